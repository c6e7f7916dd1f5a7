// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/migrations"
)

// DB is a database connection bound to one SQL dialect: its placeholder
// format, its migration set and its driver error codes.
type DB struct {
	*sql.DB
	dialect         migrations.Dialect
	builder         sq.StatementBuilderType
	errorClassifier errorClassifier
	logger          *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.SQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassifier = sqliteErrorClassifier{}
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassifier = postgresErrorClassifier{}
	}

	return db
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
