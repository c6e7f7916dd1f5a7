// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/vpn-portal/models"
)

const usersTable = "users"

// userColumns is the column order of every users SELECT and INSERT; scanUser
// follows it.
var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"license_key",
	"vpn_account_id",
	"vpn_username",
	"vpn_password",
	"wg_private_key",
	"wg_public_key",
	"wg_ip_address",
	"status",
	"created_at",
}

func buildInsertUser(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			u.ID,
			u.Email,
			u.PasswordHash,
			u.LicenseKey,
			u.VPNAccountID,
			u.VPNUsername,
			u.VPNPassword,
			u.WGPrivateKey,
			u.WGPublicKey,
			u.WGIPAddress,
			string(u.Status),
			u.CreatedAt,
		).
		ToSql()
}

func buildSelectUserBy(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildListUsers(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpdateVPNCredentials(b sq.StatementBuilderType, userID string, c models.VPNCredentials) (string, []any, error) {
	return b.Update(usersTable).
		Set("vpn_account_id", c.VPNAccountID).
		Set("vpn_username", c.VPNUsername).
		Set("vpn_password", c.VPNPassword).
		Set("wg_private_key", c.WGPrivateKey).
		Set("wg_public_key", c.WGPublicKey).
		Set("wg_ip_address", c.WGIPAddress).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateStatus(b sq.StatementBuilderType, userID string, status models.UserStatus) (string, []any, error) {
	return b.Update(usersTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
