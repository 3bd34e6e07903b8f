package memory

import "github.com/avnit77/recipes/pkg/storage"

// Store contains all memory-based sub-stores for managing the persistent models
type store struct {
	events  *eventStore
	recipes *recipeStore
}

// NewStore creates a new memory-based Storage interface
func NewStore() storage.Interface {
	return &store{
		events:  newEventStore(),
		recipes: newRecipeStore(),
	}
}

// Events returns a sub-store for managing the Event model
func (s *store) Events() storage.EventStore {
	return s.events
}

// Recipes returns a sub-store for managing the Recipe model
func (s *store) Recipes() storage.RecipeStore {
	return s.recipes
}
