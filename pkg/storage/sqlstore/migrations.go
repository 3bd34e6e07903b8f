package sqlstore

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

// The schema is restricted to types both PostgreSQL and SQLite understand.
// Recipe ingredients and directions are stored as JSON text.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_initial",
			Up: []string{
				`CREATE TABLE recipes (
					id          TEXT PRIMARY KEY,
					name        TEXT NOT NULL,
					ingredients TEXT NOT NULL,
					directions  TEXT NOT NULL,
					version     INTEGER NOT NULL DEFAULT 0,
					created_at  TIMESTAMP NOT NULL,
					updated_at  TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE events (
					id            TEXT PRIMARY KEY,
					recipe_id     TEXT NOT NULL,
					date_of_event TIMESTAMP NOT NULL,
					notes         TEXT NULL,
					rating        INTEGER NOT NULL CHECK (rating >= 0 AND rating <= 5),
					version       INTEGER NOT NULL DEFAULT 0,
					created_at    TIMESTAMP NOT NULL,
					updated_at    TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX events_recipe_id_idx ON events (recipe_id)`,
			},
			Down: []string{
				`DROP TABLE events`,
				`DROP TABLE recipes`,
			},
		},
	},
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(db *sqlx.DB) (int, error) {
	n, err := migrate.Exec(db.DB, db.DriverName(), migrations, migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "failed to apply migrations")
	}

	return n, nil
}
