// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup or update targets a user that
	// does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrLicenseAlreadyExists is returned when a generated license key
	// collides with a stored one.
	ErrLicenseAlreadyExists = errors.New("license key already exists")

	// ErrUnknownDriver is returned by [NewStorages] for a driver it cannot
	// build.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a users row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan user row")
)
