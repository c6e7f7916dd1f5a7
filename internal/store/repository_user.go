// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
)

// userRepository is the SQL implementation of [UserRepository]. The same code
// serves PostgreSQL and SQLite; the [DB] supplies placeholders and error
// classification.
type userRepository struct {
	db  *DB
	ids utils.IDGenerator
	now func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, ids utils.IDGenerator) UserRepository {
	db.logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:  db,
		ids: ids,
		now: time.Now,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user = prepareNewUser(user, r.ids, r.now)

	query, args, err := buildInsertUser(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if classified := r.db.errorClassifier.classify(err); classified != nil {
			return models.User{}, classified
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *userRepository) GetUserByLicense(ctx context.Context, licenseKey string) (models.User, error) {
	return r.getUserBy(ctx, "license_key", licenseKey)
}

func (r *userRepository) getUserBy(ctx context.Context, column, value string) (models.User, error) {
	query, args, err := buildSelectUserBy(r.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.getUserBy").
			Str("column", column).
			Msg("error selecting user")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdateVPNCredentials(ctx context.Context, userID string, creds models.VPNCredentials) error {
	query, args, err := buildUpdateVPNCredentials(r.db.builder, userID, creds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*userRepository.UpdateVPNCredentials", query, args)
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error {
	query, args, err := buildUpdateStatus(r.db.builder, userID, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*userRepository.UpdateStatus", query, args)
}

func (r *userRepository) execUpdate(ctx context.Context, funcName, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildListUsers(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u      models.User
		status string
	)

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.LicenseKey,
		&u.VPNAccountID,
		&u.VPNUsername,
		&u.VPNPassword,
		&u.WGPrivateKey,
		&u.WGPublicKey,
		&u.WGIPAddress,
		&status,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	u.Status = models.UserStatus(status)
	return u, nil
}

// prepareNewUser fills the server-assigned fields of a user about to be
// stored.
func prepareNewUser(user models.User, ids utils.IDGenerator, now func() time.Time) models.User {
	if user.ID == "" {
		user.ID = ids.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now().UTC()
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	return user
}
