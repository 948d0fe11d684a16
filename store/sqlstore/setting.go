package sqlstore

import (
	"context"
	"time"

	"github.com/mustafagenc/planly/model"
)

const settingColumns = "id, key, value, type, label, description, user_id, created_at, updated_at"

func scanSetting(row rowScanner) (model.Setting, error) {
	var s model.Setting
	err := row.Scan(&s.SettingID, &s.Key, &s.Value, &s.Type, &s.Label, &s.Description,
		&s.CreatedBy, scanTime{&s.CreatedAt}, scanTime{&s.UpdatedAt})
	return s, err
}

func (d *Database) CreateSetting(ctx context.Context, userID string, setting *model.Setting) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	now := time.Now().UTC()
	setting.CreatedBy = userID
	setting.CreatedAt, setting.UpdatedAt = now, now
	_, err := d.DB.ExecContext(ctx, d.rebind(`INSERT INTO settings (`+settingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		setting.SettingID, setting.Key, setting.Value, setting.Type, setting.Label, setting.Description,
		userID, now, now)
	return wrapSettingErr("create", setting.Key, err)
}

func (d *Database) GetSetting(ctx context.Context, userID, settingID string) (model.Setting, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	row := d.DB.QueryRowContext(ctx, d.rebind("SELECT "+settingColumns+" FROM settings WHERE id = ? AND user_id = ?"), settingID, userID)
	s, err := scanSetting(row)
	return s, wrapSettingErr("get", settingID, err)
}

func (d *Database) GetSettingByKey(ctx context.Context, userID, key string) (model.Setting, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	row := d.DB.QueryRowContext(ctx, d.rebind("SELECT "+settingColumns+" FROM settings WHERE key = ? AND user_id = ?"), key, userID)
	s, err := scanSetting(row)
	return s, wrapSettingErr("get", key, err)
}

func (d *Database) ListSettings(ctx context.Context, userID string) ([]model.Setting, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, d.rebind("SELECT "+settingColumns+" FROM settings WHERE user_id = ? ORDER BY key ASC"), userID)
	if err != nil {
		return nil, wrapSettingErr("list", "", err)
	}
	defer rows.Close()

	settings := []model.Setting{}
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, wrapSettingErr("list", "", err)
		}
		settings = append(settings, s)
	}
	return settings, wrapSettingErr("list", "", rows.Err())
}

// UpdateSetting rewrites value, label and description. Key and type are fixed at creation.
func (d *Database) UpdateSetting(ctx context.Context, userID string, setting *model.Setting) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	setting.UpdatedAt = time.Now().UTC()
	res, err := d.DB.ExecContext(ctx, d.rebind(`UPDATE settings SET value = ?, label = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`),
		setting.Value, setting.Label, setting.Description, setting.UpdatedAt, setting.SettingID, userID)
	if err == nil {
		err = requireAffected(res)
	}
	return wrapSettingErr("update", setting.SettingID, err)
}

func (d *Database) DeleteSetting(ctx context.Context, userID, settingID string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, d.rebind("DELETE FROM settings WHERE id = ? AND user_id = ?"), settingID, userID)
	if err == nil {
		err = requireAffected(res)
	}
	return wrapSettingErr("delete", settingID, err)
}
