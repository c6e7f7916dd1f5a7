// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// errorClassifier maps dialect specific constraint errors to the sentinel
// errors of this package. It returns nil for everything else.
type errorClassifier interface {
	classify(err error) error
}

type postgresErrorClassifier struct{}

func (postgresErrorClassifier) classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	if strings.Contains(pgErr.ConstraintName, "license") {
		return ErrLicenseAlreadyExists
	}
	return ErrEmailAlreadyExists
}

type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil
	}

	// "UNIQUE constraint failed: users.license_key"
	if strings.Contains(err.Error(), "license_key") {
		return ErrLicenseAlreadyExists
	}
	return ErrEmailAlreadyExists
}
