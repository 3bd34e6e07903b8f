// Package sqlstore implements the storage interface on top of sqlx. The same
// queries serve PostgreSQL ("postgres") and SQLite ("sqlite3"); positional
// bindvars are rebound for the driver in use.
package sqlstore

import (
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	// SQL drivers selectable through DATABASE_DRIVER
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// store contains all SQL based sub-stores for managing the models
type store struct {
	events  *eventStore
	recipes *recipeStore
}

// NewStore creates a new SQL based Storage interface
func NewStore(db *sqlx.DB) storage.Interface {
	return &store{
		events:  newEventStore(db),
		recipes: newRecipeStore(db),
	}
}

// Open connects to the database and checks the connection.
func Open(driver, url string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", driver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s database", driver)
	}

	return db, nil
}

// Events returns a sub-store for managing the Event model
func (s *store) Events() storage.EventStore {
	return s.events
}

// Recipes returns a sub-store for managing the Recipe model
func (s *store) Recipes() storage.RecipeStore {
	return s.recipes
}
