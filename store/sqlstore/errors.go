package sqlstore

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mustafagenc/planly/store"
)

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case isUniqueViolation(err):
		return store.ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func wrapTaskErr(op, id string, err error) error {
	return store.Wrap(op, "task", id, translate(err))
}

func wrapWorkLogErr(op, id string, err error) error {
	return store.Wrap(op, "work log", id, translate(err))
}

func wrapDefinitionErr(op, resource, id string, err error) error {
	return store.Wrap(op, resource, id, translate(err))
}

func wrapSettingErr(op, id string, err error) error {
	return store.Wrap(op, "setting", id, translate(err))
}

func wrapUserErr(op, id string, err error) error {
	return store.Wrap(op, "user", id, translate(err))
}
