package model

import "time"

// Event is a single instance of cooking a recipe. Day, month and year are
// not stored; they are derived from DateOfEvent on access.
type Event struct {
	ID          string
	RecipeID    string
	DateOfEvent time.Time
	Notes       *string
	Rating      int
	Version     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	MinRating = 0
	MaxRating = 5
)

// Validate checks the stored fields of the event.
func (e *Event) Validate() error {
	verr := &ValidationError{}

	if e.RecipeID == "" {
		verr.Add("recipeId", "is required")
	} else if !IsValidID(e.RecipeID) {
		verr.Add("recipeId", "is not a valid identifier")
	}
	if e.DateOfEvent.IsZero() {
		verr.Add("dateOfEvent", "is required")
	}
	if e.Rating < MinRating || e.Rating > MaxRating {
		verr.Add("rating", "must be between 0 and 5")
	}

	return verr.OrNil()
}

func (e *Event) Day() string {
	return Day(e.DateOfEvent)
}

// SetDay discards v, see SetDay.
func (e *Event) SetDay(v interface{}) {
	e.DateOfEvent = SetDay(e.DateOfEvent)
}

func (e *Event) Month() string {
	return Month(e.DateOfEvent)
}

// SetMonth discards v, see SetMonth.
func (e *Event) SetMonth(v interface{}) {
	e.DateOfEvent = SetMonth(e.DateOfEvent)
}

func (e *Event) Year() int {
	return Year(e.DateOfEvent)
}

// SetYear discards v, see SetYear.
func (e *Event) SetYear(v interface{}) {
	e.DateOfEvent = SetYear(e.DateOfEvent)
}
