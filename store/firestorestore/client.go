// Package firestorestore implements store.Store on Cloud Firestore. Every
// document carries a createdby field holding the owner's user id, and all
// reads filter on it.
package firestorestore

import (
	"context"
	"errors"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "Users"
	tasksCollection    = "Tasks"
	workLogsCollection = "WorkLogs"
	settingsCollection = "Settings"
)

var definitionCollections = map[model.DefinitionKind]string{
	model.KindProject: "Projects",
	model.KindUnit:    "Units",
	model.KindPerson:  "People",
}

// taskRefFields maps a definition kind onto the task field that points at it.
var taskRefFields = map[model.DefinitionKind]string{
	model.KindProject: "projectid",
	model.KindUnit:    "unitid",
	model.KindPerson:  "responsibleid",
}

type Client struct {
	fs *firestore.Client
}

var _ store.Store = (*Client)(nil)

func New(fs *firestore.Client) *Client {
	return &Client{fs: fs}
}

func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) owned(collection, userID string) firestore.Query {
	return c.fs.Collection(collection).Where("createdby", "==", userID)
}

// translate maps gRPC status codes onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return store.ErrNotFound
	case codes.AlreadyExists:
		return store.ErrDuplicate
	}
	return err
}

func wrap(op, resource, id string, err error) error {
	return store.Wrap(op, resource, id, translate(err))
}

// getOwned loads a document and hides it when it belongs to someone else.
func getOwned(ctx context.Context, tx *firestore.Transaction, ref *firestore.DocumentRef, userID string, dst interface{}) error {
	var snap *firestore.DocumentSnapshot
	var err error
	if tx != nil {
		snap, err = tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		return err
	}
	if owner, err := snap.DataAt("createdby"); err != nil || owner != userID {
		return store.ErrNotFound
	}
	return snap.DataTo(dst)
}

// collect drains an iterator into typed values.
func collect[T any](it *firestore.DocumentIterator) ([]T, error) {
	defer it.Stop()
	out := []T{}
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// exists reports whether the query matches at least one document.
func exists(ctx context.Context, tx *firestore.Transaction, q firestore.Query) (bool, error) {
	var it *firestore.DocumentIterator
	if tx != nil {
		it = tx.Documents(q.Limit(1))
	} else {
		it = q.Limit(1).Documents(ctx)
	}
	defer it.Stop()
	_, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	return err == nil, err
}

// definitionNames loads id -> name lookups for every definition kind.
func (c *Client) definitionNames(ctx context.Context, userID string) (map[model.DefinitionKind]map[string]string, error) {
	names := make(map[model.DefinitionKind]map[string]string, len(definitionCollections))
	for kind, collection := range definitionCollections {
		defs, err := collect[model.Definition](c.owned(collection, userID).Documents(ctx))
		if err != nil {
			return nil, err
		}
		m := make(map[string]string, len(defs))
		for _, d := range defs {
			m[d.DefinitionID] = d.Name
		}
		names[kind] = m
	}
	return names, nil
}

func resolveTaskNames(t *model.Tasks, names map[model.DefinitionKind]map[string]string) {
	t.ProjectName = names[model.KindProject][t.ProjectID]
	if t.UnitID != nil {
		t.UnitName = names[model.KindUnit][*t.UnitID]
	}
	if t.ResponsibleID != nil {
		t.ResponsibleName = names[model.KindPerson][*t.ResponsibleID]
	}
}

func sortTasks(tasks []model.Tasks) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Order != tasks[j].Order {
			return tasks[i].Order < tasks[j].Order
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
