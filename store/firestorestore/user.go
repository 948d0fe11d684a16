package firestorestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func (c *Client) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt, user.UpdatedAt = now, now
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taken, err := exists(ctx, tx, c.fs.Collection(usersCollection).Where("email", "==", user.Email))
		if err != nil {
			return err
		}
		if taken {
			return store.ErrDuplicate
		}
		return tx.Create(c.fs.Collection(usersCollection).Doc(user.UserID), user)
	})
	return wrap("create", "user", user.Email, err)
}

func (c *Client) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	snap, err := c.fs.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return u, wrap("get", "user", userID, err)
	}
	return u, wrap("get", "user", userID, snap.DataTo(&u))
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := collect[model.User](c.fs.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx))
	if err != nil {
		return model.User{}, wrap("get", "user", email, err)
	}
	if len(users) == 0 {
		return model.User{}, wrap("get", "user", email, store.ErrNotFound)
	}
	return users[0], nil
}

func (c *Client) UpdateUser(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdatedAt = time.Now().UTC()
	_, err := c.fs.Collection(usersCollection).Doc(user.UserID).Update(ctx, []firestore.Update{
		{Path: "name", Value: user.Name},
		{Path: "email", Value: user.Email},
		{Path: "password", Value: user.Password},
		{Path: "role", Value: user.Role},
		{Path: "updatedat", Value: user.UpdatedAt},
	})
	return wrap("update", "user", user.UserID, err)
}

func (c *Client) SetRefreshToken(ctx context.Context, userID, hash string) error {
	_, err := c.fs.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "refreshtoken", Value: hash},
	})
	return wrap("set refresh token", "user", userID, err)
}

// DeleteUser removes every document the user owns, then the user. The
// deletes go through a BulkWriter and are not atomic.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	userRef := c.fs.Collection(usersCollection).Doc(userID)
	if _, err := userRef.Get(ctx); err != nil {
		return wrap("delete", "user", userID, err)
	}

	collections := []string{workLogsCollection, tasksCollection, settingsCollection}
	for _, collection := range definitionCollections {
		collections = append(collections, collection)
	}

	bw := c.fs.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, collection := range collections {
		docs, err := c.owned(collection, userID).Documents(ctx).GetAll()
		if err != nil {
			bw.End()
			return wrap("delete", "user", userID, err)
		}
		for _, doc := range docs {
			job, err := bw.Delete(doc.Ref)
			if err != nil {
				bw.End()
				return wrap("delete", "user", userID, err)
			}
			jobs = append(jobs, job)
		}
	}
	job, err := bw.Delete(userRef)
	if err != nil {
		bw.End()
		return wrap("delete", "user", userID, err)
	}
	jobs = append(jobs, job)
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return wrap("delete", "user", userID, err)
		}
	}
	return nil
}

func (c *Client) CountUsers(ctx context.Context) (int, error) {
	docs, err := c.fs.Collection(usersCollection).Documents(ctx).GetAll()
	if err != nil {
		return 0, wrap("count", "user", "", err)
	}
	return len(docs), nil
}
