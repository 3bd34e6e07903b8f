package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func newRecipeStore(db *sqlx.DB) *recipeStore {
	return &recipeStore{
		db: db,
	}
}

type recipeStore struct {
	db *sqlx.DB
}

type sqlDataRecipe struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Ingredients string    `db:"ingredients"`
	Directions  string    `db:"directions"`
	Version     int       `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type sqlDataIngredient struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Measurement string  `json:"measurement"`
}

var sqlParamsRecipe = []string{
	"id",
	"name",
	"ingredients",
	"directions",
	"version",
	"created_at",
	"updated_at",
}

func (d *sqlDataRecipe) Scan(m *model.Recipe) error {
	ingredients := make([]sqlDataIngredient, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, sqlDataIngredient{
			Name:        ing.Name,
			Amount:      ing.Amount,
			Measurement: ing.Measurement,
		})
	}
	ingredientsJSON, err := json.Marshal(ingredients)
	if err != nil {
		return errors.Wrap(err, "failed to encode ingredients")
	}

	directions := m.Directions
	if directions == nil {
		directions = []string{}
	}
	directionsJSON, err := json.Marshal(directions)
	if err != nil {
		return errors.Wrap(err, "failed to encode directions")
	}

	d.ID = m.ID
	d.Name = m.Name
	d.Ingredients = string(ingredientsJSON)
	d.Directions = string(directionsJSON)
	d.Version = m.Version
	d.CreatedAt = m.CreatedAt.UTC()
	d.UpdatedAt = m.UpdatedAt.UTC()

	return nil
}

func (d *sqlDataRecipe) Model() (*model.Recipe, error) {
	var ingredients []sqlDataIngredient
	if err := json.Unmarshal([]byte(d.Ingredients), &ingredients); err != nil {
		return nil, errors.Wrap(err, "failed to decode ingredients")
	}

	var directions []string
	if err := json.Unmarshal([]byte(d.Directions), &directions); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions")
	}

	m := &model.Recipe{
		ID:          d.ID,
		Name:        d.Name,
		Ingredients: make([]model.Ingredient, 0, len(ingredients)),
		Directions:  directions,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	for _, ing := range ingredients {
		m.Ingredients = append(m.Ingredients, model.Ingredient{
			Name:        ing.Name,
			Amount:      ing.Amount,
			Measurement: ing.Measurement,
		})
	}

	return m, nil
}

func (s *recipeStore) FetchAll(ctx context.Context) (map[string]model.Recipe, error) {
	rows := make([]sqlDataRecipe, 0)
	models := make(map[string]model.Recipe)

	query := "SELECT * FROM recipes ORDER BY created_at, id"
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all recipes")
	}

	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to recipe model")
		}

		models[d.ID] = *m
	}

	return models, nil
}

func (s *recipeStore) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	d := sqlDataRecipe{}
	query := s.db.Rebind("SELECT * FROM recipes WHERE id=?")
	if err := s.db.GetContext(ctx, &d, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return d.Model()
}

func (s *recipeStore) Create(ctx context.Context, m *model.Recipe) error {
	if err := m.Validate(); err != nil {
		return err
	}

	m.ID = model.NewID()
	m.Version = 0
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	d := sqlDataRecipe{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert recipe model to SQL data")
	}

	query := fmt.Sprintf(
		"INSERT INTO recipes (%s) VALUES (%s)",
		strings.Join(sqlParamsRecipe, ", "),
		":"+strings.Join(sqlParamsRecipe, ", :"),
	)
	if _, err := s.db.NamedExecContext(ctx, query, d); err != nil {
		return errors.Wrap(err, "failed to create recipe")
	}

	return nil
}
