package resource

import (
	"sort"

	"github.com/avnit77/recipes/pkg/model"
)

type IngredientResource struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Measurement string  `json:"measurement"`
}

type RecipeResource struct {
	ID          string               `json:"_id"`
	Name        string               `json:"name"`
	Ingredients []IngredientResource `json:"ingredients"`
	Directions  []string             `json:"directions"`
	Version     int                  `json:"__v"`
}

// RecipeRequest is the body accepted when creating a recipe
type RecipeRequest struct {
	Name        string               `json:"name"`
	Ingredients []IngredientResource `json:"ingredients"`
	Directions  []string             `json:"directions"`
}

func NewRecipe(m *model.Recipe) (out *RecipeResource) {
	out = &RecipeResource{
		ID:          m.ID,
		Name:        m.Name,
		Ingredients: make([]IngredientResource, 0, len(m.Ingredients)),
		Directions:  make([]string, 0, len(m.Directions)),
		Version:     m.Version,
	}

	for _, ing := range m.Ingredients {
		out.Ingredients = append(out.Ingredients, IngredientResource{
			Name:        ing.Name,
			Amount:      ing.Amount,
			Measurement: ing.Measurement,
		})
	}
	out.Directions = append(out.Directions, m.Directions...)

	return // out
}

func NewRecipeList(m map[string]model.Recipe) []*RecipeResource {
	models := make([]model.Recipe, 0, len(m))
	for _, elem := range m {
		models = append(models, elem)
	}

	// Default sort by creation
	sort.Slice(models, func(i, j int) bool {
		if models[i].CreatedAt.Equal(models[j].CreatedAt) {
			return models[i].ID < models[j].ID
		}
		return models[i].CreatedAt.Before(models[j].CreatedAt)
	})

	out := make([]*RecipeResource, 0, len(models))
	for i := range models {
		out = append(out, NewRecipe(&models[i]))
	}

	return out
}

func ValidateRecipe(r *RecipeRequest) (m *model.Recipe, err error) {
	m = &model.Recipe{
		Name:       r.Name,
		Directions: r.Directions,
	}
	for _, ing := range r.Ingredients {
		m.Ingredients = append(m.Ingredients, model.Ingredient{
			Name:        ing.Name,
			Amount:      ing.Amount,
			Measurement: ing.Measurement,
		})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}
