package resource

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/avnit77/recipes/pkg/model"
)

// EventResource is the wire form of an event with recipeId as a bare
// identifier.
type EventResource struct {
	ID          string    `json:"_id"`
	RecipeID    string    `json:"recipeId"`
	DateOfEvent Timestamp `json:"dateOfEvent"`
	Notes       *string   `json:"notes"`
	Rating      int       `json:"rating"`
	Version     int       `json:"__v"`
}

// PopulatedEventResource embeds the referenced recipe under recipeId. A
// dangling reference is rendered as null.
type PopulatedEventResource struct {
	ID          string          `json:"_id"`
	RecipeID    *RecipeResource `json:"recipeId"`
	DateOfEvent Timestamp       `json:"dateOfEvent"`
	Notes       *string         `json:"notes"`
	Rating      int             `json:"rating"`
	Version     int             `json:"__v"`
}

// EventRequest carries the raw JSON of every field so absent, null and
// malformed values can be told apart. Day, Month and Year are derived
// fields; their values are never read, only their presence.
type EventRequest struct {
	RecipeID    json.RawMessage `json:"recipeId"`
	DateOfEvent json.RawMessage `json:"dateOfEvent"`
	Notes       json.RawMessage `json:"notes"`
	Rating      json.RawMessage `json:"rating"`
	Day         json.RawMessage `json:"day"`
	Month       json.RawMessage `json:"month"`
	Year        json.RawMessage `json:"year"`
}

func NewEvent(m *model.Event) (out *EventResource) {
	out = &EventResource{
		ID:          m.ID,
		RecipeID:    m.RecipeID,
		DateOfEvent: Timestamp(m.DateOfEvent),
		Notes:       m.Notes,
		Rating:      m.Rating,
		Version:     m.Version,
	}

	return // out
}

func NewPopulatedEvent(m *model.Event, recipe *model.Recipe) (out *PopulatedEventResource) {
	out = &PopulatedEventResource{
		ID:          m.ID,
		DateOfEvent: Timestamp(m.DateOfEvent),
		Notes:       m.Notes,
		Rating:      m.Rating,
		Version:     m.Version,
	}

	if recipe != nil {
		out.RecipeID = NewRecipe(recipe)
	}

	return // out
}

func NewEventList(m map[string]model.Event) []*EventResource {
	models := make([]model.Event, 0, len(m))
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

	out := make([]*EventResource, 0, len(models))
	for i := range models {
		out = append(out, NewEvent(&models[i]))
	}

	return out
}

// ValidateEvent builds a new event from a create request.
func ValidateEvent(r *EventRequest, loc *time.Location) (m *model.Event, err error) {
	m = &model.Event{}
	if err := ApplyEvent(m, r, loc); err != nil {
		return nil, err
	}

	err = m.Validate()
	if !present(r.Rating) {
		verr, ok := err.(*model.ValidationError)
		if !ok {
			verr = &model.ValidationError{}
		}
		verr.Add("rating", "is required")
		err = verr
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ApplyEvent copies the fields present in r onto m. Stored fields are
// applied first, then the derived day, month and year setters in that
// order, evaluated in loc. The result is not validated.
func ApplyEvent(m *model.Event, r *EventRequest, loc *time.Location) error {
	verr := &model.ValidationError{}

	if present(r.RecipeID) {
		var id *string
		if err := json.Unmarshal(r.RecipeID, &id); err != nil {
			verr.Add("recipeId", "must be a string")
		} else if id == nil {
			m.RecipeID = ""
		} else {
			// malformed ids are kept as sent and rejected by Validate
			m.RecipeID, _ = model.CanonicalID(*id)
		}
	}

	if present(r.DateOfEvent) {
		if isNull(r.DateOfEvent) {
			m.DateOfEvent = time.Time{}
		} else if t, err := ParseDate(r.DateOfEvent, loc); err != nil {
			verr.Add("dateOfEvent", "is not a valid date")
		} else {
			m.DateOfEvent = t
		}
	}

	if present(r.Notes) {
		var notes *string
		if err := json.Unmarshal(r.Notes, &notes); err != nil {
			verr.Add("notes", "must be a string")
		} else {
			m.Notes = notes
		}
	}

	if present(r.Rating) {
		var rating *float64
		if err := json.Unmarshal(r.Rating, &rating); err != nil {
			verr.Add("rating", "must be a number")
		} else if rating == nil {
			verr.Add("rating", "is required")
		} else if *rating != math.Trunc(*rating) {
			verr.Add("rating", "must be an integer")
		} else if *rating < model.MinRating || *rating > model.MaxRating {
			verr.Add("rating", "must be between 0 and 5")
		} else {
			m.Rating = int(*rating)
		}
	}

	if err := verr.OrNil(); err != nil {
		return err
	}

	if m.DateOfEvent.IsZero() {
		return nil
	}

	m.DateOfEvent = m.DateOfEvent.In(loc)
	if present(r.Day) {
		m.SetDay(r.Day)
	}
	if present(r.Month) {
		m.SetMonth(r.Month)
	}
	if present(r.Year) {
		m.SetYear(r.Year)
	}

	return nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
