// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
)

// Storages groups the repositories of the portal behind their interfaces.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the identity store selected by cfg.DB.Driver. SQL
// drivers are connected and migrated before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "", config.DriverMemory:
		log.Warn().Msg("using in-memory identity store; users are lost on restart")
		return &Storages{UserRepository: NewMemoryUserRepository(ids)}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, ids),
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
