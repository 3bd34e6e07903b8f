package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/avnit77/recipes/pkg/storage"
)

type recipeStore struct {
	store map[string]model.Recipe
	sync.RWMutex
}

func newRecipeStore() *recipeStore {
	return &recipeStore{
		store: make(map[string]model.Recipe),
	}
}

func (s *recipeStore) FetchAll(ctx context.Context) (models map[string]model.Recipe, err error) {
	s.RLock()
	defer s.RUnlock()
	models = make(map[string]model.Recipe, len(s.store))

	for id, m := range s.store {
		models[id] = copyRecipe(m)
	}

	return models, nil
}

func (s *recipeStore) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	s.RLock()
	defer s.RUnlock()
	if m, ok := s.store[id]; ok {
		m = copyRecipe(m)
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *recipeStore) Create(ctx context.Context, m *model.Recipe) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	m.ID = model.NewID()
	m.Version = 0
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	s.store[m.ID] = copyRecipe(*m)

	return nil
}

func copyRecipe(m model.Recipe) model.Recipe {
	m.Ingredients = append([]model.Ingredient(nil), m.Ingredients...)
	m.Directions = append([]string(nil), m.Directions...)
	return m
}
