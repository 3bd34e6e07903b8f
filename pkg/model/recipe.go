package model

import "time"

// Recipe is a catalog entry referenced by events
type Recipe struct {
	ID          string
	Name        string
	Ingredients []Ingredient
	Directions  []string
	Version     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Ingredient struct {
	Name        string
	Amount      float64
	Measurement string
}

func (r *Recipe) Validate() error {
	verr := &ValidationError{}

	if r.Name == "" {
		verr.Add("name", "is required")
	}
	for i, ing := range r.Ingredients {
		if ing.Name == "" {
			verr.Addf("ingredients", "ingredient %d: name is required", i)
		}
	}

	return verr.OrNil()
}
