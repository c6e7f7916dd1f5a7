// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/migrations"
	"github.com/MKhiriev/vpn-portal/models"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUserRepo(t *testing.T, dialect migrations.Dialect) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &userRepository{
		db:  newDB(db, dialect, logger.Nop()),
		ids: fixedIDs{id: "0195d2c4-0000-7000-8000-000000000001"},
		now: func() time.Time { return testNow },
	}
	return repo, mock
}

func userRow(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		u.ID, u.Email, u.PasswordHash, u.LicenseKey,
		u.VPNAccountID, u.VPNUsername, u.VPNPassword,
		u.WGPrivateKey, u.WGPublicKey, u.WGIPAddress,
		string(u.Status), u.CreatedAt,
	)
}

func sampleUser() models.User {
	return models.User{
		ID:           "u-1",
		Email:        "a@b.com",
		PasswordHash: "argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		LicenseKey:   "S24-1700000000000-ABCDEF01",
		VPNAccountID: "42",
		VPNUsername:  "S24-1700000000000-ABCDEF01",
		VPNPassword:  "pw",
		WGPrivateKey: "priv",
		WGPublicKey:  "pub",
		WGIPAddress:  "10.0.0.2",
		Status:       models.UserStatusActive,
		CreatedAt:    testNow,
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	in := models.User{Email: "a@b.com", PasswordHash: "hash", LicenseKey: "S24-1-ABCDEF01"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,password_hash,license_key")).
		WithArgs("0195d2c4-0000-7000-8000-000000000001", "a@b.com", "hash", "S24-1-ABCDEF01",
			"", "", "", "", "", "", "active", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "0195d2c4-0000-7000-8000-000000000001", created.ID)
	assert.Equal(t, models.UserStatusActive, created.Status)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUserKeepsGivenFields(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.SQLite)

	in := sampleUser()
	in.Status = models.UserStatusSuspended

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(in.ID, in.Email, in.PasswordHash, in.LicenseKey, in.VPNAccountID, in.VPNUsername,
			in.VPNPassword, in.WGPrivateKey, in.WGPublicKey, in.WGIPAddress, "suspended", in.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUserErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "duplicate email",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "duplicate license",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_license_key_key"},
			wantErr: ErrLicenseAlreadyExists,
		},
		{
			name:    "other constraint",
			dbErr:   &pgconn.PgError{Code: pgerrcode.CheckViolation},
			wantErr: ErrExecutingStatement,
		},
		{
			name:    "connection lost",
			dbErr:   errors.New("conn closed"),
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, migrations.Postgres)

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com", LicenseKey: "K"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserBy(t *testing.T) {
	u := sampleUser()

	tests := []struct {
		name    string
		dialect migrations.Dialect
		query   string
		arg     string
		call    func(r *userRepository) (models.User, error)
	}{
		{
			name:    "by id postgres",
			dialect: migrations.Postgres,
			query:   "FROM users WHERE id = $1",
			arg:     u.ID,
			call: func(r *userRepository) (models.User, error) {
				return r.GetUserByID(context.Background(), u.ID)
			},
		},
		{
			name:    "by email sqlite",
			dialect: migrations.SQLite,
			query:   "FROM users WHERE email = ?",
			arg:     u.Email,
			call: func(r *userRepository) (models.User, error) {
				return r.GetUserByEmail(context.Background(), u.Email)
			},
		},
		{
			name:    "by license postgres",
			dialect: migrations.Postgres,
			query:   "FROM users WHERE license_key = $1",
			arg:     u.LicenseKey,
			call: func(r *userRepository) (models.User, error) {
				return r.GetUserByLicense(context.Background(), u.LicenseKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.dialect)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.arg).
				WillReturnRows(userRow(u))

			got, err := tt.call(repo)
			require.NoError(t, err)
			assert.Equal(t, u, got)
			assert.True(t, got.IsProvisioned())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserNotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	mock.ExpectQuery("FROM users").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUserByLicense(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_GetUserQueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.GetUserByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateVPNCredentials(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	creds := models.VPNCredentials{
		VPNAccountID: "42",
		VPNUsername:  "S24-1-ABCDEF01",
		VPNPassword:  "pw",
		WGPrivateKey: "priv",
		WGPublicKey:  "pub",
		WGIPAddress:  "10.0.0.2",
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET vpn_account_id = $1, vpn_username = $2, vpn_password = $3, wg_private_key = $4, wg_public_key = $5, wg_ip_address = $6 WHERE id = $7")).
		WithArgs("42", "S24-1-ABCDEF01", "pw", "priv", "pub", "10.0.0.2", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateVPNCredentials(context.Background(), "u-1", creds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, migrations.SQLite)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = ? WHERE id = ?")).
			WithArgs("suspended", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), "u-1", models.UserStatusSuspended))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no such user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, migrations.SQLite)

		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), "nope", models.UserStatusActive), ErrUserNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, migrations.SQLite)

		mock.ExpectExec("UPDATE users").WillReturnError(sql.ErrConnDone)

		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), "u-1", models.UserStatusActive), ErrExecutingStatement)
	})
}

func TestUserRepository_ListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	first := sampleUser()
	second := sampleUser()
	second.ID = "u-2"
	second.Email = "c@d.com"
	second.VPNAccountID = ""

	rows := userRow(first).AddRow(
		second.ID, second.Email, second.PasswordHash, second.LicenseKey,
		second.VPNAccountID, second.VPNUsername, second.VPNPassword,
		second.WGPrivateKey, second.WGPublicKey, second.WGIPAddress,
		string(second.Status), second.CreatedAt,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at, id")).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, users[0])
	assert.False(t, users[1].IsProvisioned())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsersEmpty(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_ListUsersScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.Postgres)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}
