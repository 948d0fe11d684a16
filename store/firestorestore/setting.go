package firestorestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func (c *Client) CreateSetting(ctx context.Context, userID string, setting *model.Setting) error {
	now := time.Now().UTC()
	setting.CreatedBy = userID
	setting.CreatedAt, setting.UpdatedAt = now, now
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taken, err := exists(ctx, tx, c.owned(settingsCollection, userID).Where("key", "==", setting.Key))
		if err != nil {
			return err
		}
		if taken {
			return store.ErrDuplicate
		}
		return tx.Create(c.fs.Collection(settingsCollection).Doc(setting.SettingID), setting)
	})
	return wrap("create", "setting", setting.Key, err)
}

func (c *Client) GetSetting(ctx context.Context, userID, settingID string) (model.Setting, error) {
	var s model.Setting
	err := getOwned(ctx, nil, c.fs.Collection(settingsCollection).Doc(settingID), userID, &s)
	return s, wrap("get", "setting", settingID, err)
}

func (c *Client) GetSettingByKey(ctx context.Context, userID, key string) (model.Setting, error) {
	settings, err := collect[model.Setting](c.owned(settingsCollection, userID).Where("key", "==", key).Limit(1).Documents(ctx))
	if err != nil {
		return model.Setting{}, wrap("get", "setting", key, err)
	}
	if len(settings) == 0 {
		return model.Setting{}, wrap("get", "setting", key, store.ErrNotFound)
	}
	return settings[0], nil
}

func (c *Client) ListSettings(ctx context.Context, userID string) ([]model.Setting, error) {
	settings, err := collect[model.Setting](c.owned(settingsCollection, userID).Documents(ctx))
	if err != nil {
		return nil, wrap("list", "setting", "", err)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

func (c *Client) UpdateSetting(ctx context.Context, userID string, setting *model.Setting) error {
	ref := c.fs.Collection(settingsCollection).Doc(setting.SettingID)
	setting.UpdatedAt = time.Now().UTC()
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.Setting
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "value", Value: setting.Value},
			{Path: "label", Value: setting.Label},
			{Path: "description", Value: setting.Description},
			{Path: "updatedat", Value: setting.UpdatedAt},
		})
	})
	return wrap("update", "setting", setting.SettingID, err)
}

func (c *Client) DeleteSetting(ctx context.Context, userID, settingID string) error {
	ref := c.fs.Collection(settingsCollection).Doc(settingID)
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.Setting
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		return tx.Delete(ref)
	})
	return wrap("delete", "setting", settingID, err)
}
