package connection

import (
	"context"
	"log"

	"github.com/mustafagenc/planly/config"
	"github.com/mustafagenc/planly/store"
	"github.com/mustafagenc/planly/store/firestorestore"
	"github.com/mustafagenc/planly/store/sqlstore"
)

// OpenStore connects the backend named by cfg.Driver. SQL backends are
// migrated on open.
func OpenStore(ctx context.Context, cfg config.Database) (store.Store, error) {
	if cfg.Driver == "firestore" {
		client, err := FBConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return firestorestore.New(client), nil
	}

	db, err := sqlstore.Open(ctx, cfg.Driver, cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("%s database ready", cfg.Driver)
	return db, nil
}
