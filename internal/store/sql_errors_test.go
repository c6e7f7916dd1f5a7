// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := postgresErrorClassifier{}

	assert.Nil(t, c.classify(nil))
	assert.Nil(t, c.classify(errors.New("plain")))
	assert.Nil(t, c.classify(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.ErrorIs(t, c.classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}), ErrEmailAlreadyExists)
	assert.ErrorIs(t, c.classify(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_license_key_key"})), ErrLicenseAlreadyExists)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := sqliteErrorClassifier{}

	assert.Nil(t, c.classify(nil))
	assert.Nil(t, c.classify(errors.New("UNIQUE constraint failed: users.email")))
	assert.Nil(t, c.classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.ErrorIs(t, c.classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}), ErrEmailAlreadyExists)
}
