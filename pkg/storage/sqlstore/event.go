package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func newEventStore(db *sqlx.DB) *eventStore {
	return &eventStore{
		db: db,
	}
}

type eventStore struct {
	db *sqlx.DB
}

type sqlDataEvent struct {
	ID          string    `db:"id"`
	RecipeID    string    `db:"recipe_id"`
	DateOfEvent time.Time `db:"date_of_event"`
	Notes       *string   `db:"notes"`
	Rating      int       `db:"rating"`
	Version     int       `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var sqlParamsEvent = []string{
	"id",
	"recipe_id",
	"date_of_event",
	"notes",
	"rating",
	"version",
	"created_at",
	"updated_at",
}

// Columns an update may change; version and created_at stay as stored.
var sqlParamsEventUpdate = []string{
	"recipe_id",
	"date_of_event",
	"notes",
	"rating",
	"updated_at",
}

func (d *sqlDataEvent) Scan(m *model.Event) error {
	var createdAt, updatedAt = m.CreatedAt, m.UpdatedAt

	if m.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if m.UpdatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	d.ID = m.ID
	d.RecipeID = m.RecipeID
	d.DateOfEvent = m.DateOfEvent.UTC()
	d.Notes = m.Notes
	d.Rating = m.Rating
	d.Version = m.Version
	d.CreatedAt = createdAt.UTC()
	d.UpdatedAt = updatedAt.UTC()

	return nil
}

func (d *sqlDataEvent) Model() (*model.Event, error) {
	m := &model.Event{
		ID:          d.ID,
		RecipeID:    d.RecipeID,
		DateOfEvent: d.DateOfEvent.UTC(),
		Notes:       d.Notes,
		Rating:      d.Rating,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}

	return m, nil
}

func (s *eventStore) FetchAll(ctx context.Context) (map[string]model.Event, error) {
	return fetchAllEvents(ctx, s.db)
}

func (s *eventStore) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return findEventByID(ctx, s.db, id)
}

func (s *eventStore) Create(ctx context.Context, m *model.Event) error {
	return createEvent(ctx, s.db, m)
}

func (s *eventStore) Update(ctx context.Context, m *model.Event) error {
	return updateEvent(ctx, s.db, m)
}

func (s *eventStore) Delete(ctx context.Context, id string) error {
	return deleteEvent(ctx, s.db, id)
}

func fetchAllEvents(ctx context.Context, db *sqlx.DB) (map[string]model.Event, error) {
	rows := make([]sqlDataEvent, 0)
	models := make(map[string]model.Event)

	query := "SELECT * FROM events ORDER BY created_at, id"
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all events")
	}

	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to event model")
		}

		models[d.ID] = *m
	}

	return models, nil
}

func findEventByID(ctx context.Context, db *sqlx.DB, id string) (*model.Event, error) {
	d := sqlDataEvent{}
	query := db.Rebind("SELECT * FROM events WHERE id=?")
	if err := db.GetContext(ctx, &d, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to find event")
	}

	return d.Model()
}

func createEvent(ctx context.Context, db *sqlx.DB, m *model.Event) error {
	if err := m.Validate(); err != nil {
		return err
	}

	m.ID = model.NewID()
	m.Version = 0
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	d := sqlDataEvent{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert event model to SQL data")
	}

	query := fmt.Sprintf(
		"INSERT INTO events (%s) VALUES (%s)",
		strings.Join(sqlParamsEvent, ", "),
		":"+strings.Join(sqlParamsEvent, ", :"),
	)
	if _, err := db.NamedExecContext(ctx, query, d); err != nil {
		return errors.Wrap(err, "failed to create event")
	}

	return nil
}

func updateEvent(ctx context.Context, db *sqlx.DB, m *model.Event) error {
	if err := m.Validate(); err != nil {
		return err
	}

	old, err := findEventByID(ctx, db, m.ID)
	if err != nil {
		return err
	}

	m.Version = old.Version
	m.CreatedAt = old.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	d := sqlDataEvent{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert event model to SQL data")
	}

	var queryParams []string
	for _, param := range sqlParamsEventUpdate {
		queryParams = append(queryParams, fmt.Sprintf("%s=:%s", param, param))
	}
	query := fmt.Sprintf("UPDATE events SET %s WHERE id=:id", strings.Join(queryParams, ", "))
	if _, err := db.NamedExecContext(ctx, query, d); err != nil {
		return errors.Wrap(err, "failed to update event")
	}

	return nil
}

func deleteEvent(ctx context.Context, db *sqlx.DB, id string) error {
	query := db.Rebind("DELETE FROM events WHERE id=?")
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete event")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to delete event")
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
