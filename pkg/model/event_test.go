package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		RecipeID:    NewID(),
		DateOfEvent: time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC),
		Rating:      5,
	}
}

func TestEventValidate_Rating(t *testing.T) {
	for _, rating := range []int{0, 5} {
		e := validEvent()
		e.Rating = rating
		assert.NoError(t, e.Validate(), "rating %d", rating)
	}

	for _, rating := range []int{-1, 6} {
		e := validEvent()
		e.Rating = rating
		err := e.Validate()
		require.Error(t, err, "rating %d", rating)

		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "rating", verr.Fields[0].Field)
	}
}

func TestEventValidate_MissingFields(t *testing.T) {
	e := &Event{Rating: 3}
	err := e.Validate()
	require.Error(t, err)

	verr := err.(*ValidationError)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "recipeId", verr.Fields[0].Field)
	assert.Equal(t, "dateOfEvent", verr.Fields[1].Field)
	assert.Contains(t, err.Error(), "dateOfEvent is required")
}

func TestEventValidate_MalformedRecipeID(t *testing.T) {
	e := validEvent()
	e.RecipeID = "not-an-id"
	assert.Error(t, e.Validate())
}

func TestEventValidate_NonCanonicalRecipeID(t *testing.T) {
	e := validEvent()
	e.RecipeID = strings.ToUpper(e.RecipeID)
	assert.Error(t, e.Validate())

	id, ok := CanonicalID(e.RecipeID)
	require.True(t, ok)
	assert.True(t, IsValidID(id))

	_, ok = CanonicalID("not-an-id")
	assert.False(t, ok)
}

func TestRecipeValidate(t *testing.T) {
	r := &Recipe{Name: "cookies", Ingredients: []Ingredient{{Name: "flour", Amount: 1, Measurement: "cup"}}}
	assert.NoError(t, r.Validate())

	r = &Recipe{Ingredients: []Ingredient{{Amount: 1}}}
	err := r.Validate()
	require.Error(t, err)
	assert.Len(t, err.(*ValidationError).Fields, 2)
}
