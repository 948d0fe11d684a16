package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mustafagenc/planly/model"
)

const userColumns = "id, name, email, password, role, refresh_token, created_at, updated_at"

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.Password, &u.Role, &u.RefreshToken,
		scanTime{&u.CreatedAt}, scanTime{&u.UpdatedAt})
	return u, err
}

func (d *Database) CreateUser(ctx context.Context, user *model.User) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	now := time.Now().UTC()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt, user.UpdatedAt = now, now
	_, err := d.DB.ExecContext(ctx, d.rebind(`INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		user.UserID, user.Name, user.Email, user.Password, user.Role, user.RefreshToken, now, now)
	return wrapUserErr("create", user.Email, err)
}

func (d *Database) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	u, err := scanUser(d.DB.QueryRowContext(ctx, d.rebind("SELECT "+userColumns+" FROM users WHERE id = ?"), userID))
	return u, wrapUserErr("get", userID, err)
}

func (d *Database) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(d.DB.QueryRowContext(ctx, d.rebind("SELECT "+userColumns+" FROM users WHERE email = ?"), email))
	return u, wrapUserErr("get", email, err)
}

// UpdateUser writes name, email, password and role.
func (d *Database) UpdateUser(ctx context.Context, user *model.User) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdatedAt = time.Now().UTC()
	res, err := d.DB.ExecContext(ctx, d.rebind("UPDATE users SET name = ?, email = ?, password = ?, role = ?, updated_at = ? WHERE id = ?"),
		user.Name, user.Email, user.Password, user.Role, user.UpdatedAt, user.UserID)
	if err == nil {
		err = requireAffected(res)
	}
	return wrapUserErr("update", user.UserID, err)
}

func (d *Database) SetRefreshToken(ctx context.Context, userID, hash string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, d.rebind("UPDATE users SET refresh_token = ? WHERE id = ?"), hash, userID)
	if err == nil {
		err = requireAffected(res)
	}
	return wrapUserErr("set refresh token", userID, err)
}

// DeleteUser removes the user together with everything they own.
func (d *Database) DeleteUser(ctx context.Context, userID string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"work_logs", "tasks", "projects", "units", "people", "settings"} {
			if _, err := tx.ExecContext(ctx, d.rebind("DELETE FROM "+table+" WHERE user_id = ?"), userID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, d.rebind("DELETE FROM users WHERE id = ?"), userID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	return wrapUserErr("delete", userID, err)
}

func (d *Database) CountUsers(ctx context.Context) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var n int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM users").Scan(&n)
	return n, wrapUserErr("count", "", err)
}
