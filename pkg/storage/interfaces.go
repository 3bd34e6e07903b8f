package storage

import (
	"context"

	"github.com/avnit77/recipes/pkg/model"
)

// Interface is implemented by the storage
type Interface interface {
	Events() EventStore
	Recipes() RecipeStore
}

// EventStore is responsible for managing the Event model
type EventStore interface {
	FetchAll(ctx context.Context) (map[string]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, m *model.Event) error
	Update(ctx context.Context, m *model.Event) error
	Delete(ctx context.Context, id string) error
}

// RecipeStore is responsible for managing the Recipe model
type RecipeStore interface {
	FetchAll(ctx context.Context) (map[string]model.Recipe, error)
	FindByID(ctx context.Context, id string) (*model.Recipe, error)
	Create(ctx context.Context, m *model.Recipe) error
}
