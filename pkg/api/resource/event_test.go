package resource

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/avnit77/recipes/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, body string) *EventRequest {
	t.Helper()
	r := &EventRequest{}
	require.NoError(t, json.Unmarshal([]byte(body), r))
	return r
}

func TestValidateEvent(t *testing.T) {
	recipeID := model.NewID()
	r := decodeRequest(t, `{"recipeId":"`+recipeID+`","dateOfEvent":"2014-12-12T00:00:00.000Z","notes":"It went well","rating":4}`)

	m, err := ValidateEvent(r, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, recipeID, m.RecipeID)
	assert.True(t, time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC).Equal(m.DateOfEvent))
	require.NotNil(t, m.Notes)
	assert.Equal(t, "It went well", *m.Notes)
	assert.Equal(t, 4, m.Rating)
}

func TestValidateEvent_Rating(t *testing.T) {
	recipeID := model.NewID()
	tests := []struct {
		rating string
		ok     bool
	}{
		{"0", true},
		{"5", true},
		{"-1", false},
		{"6", false},
		{"4.5", false},
		{`"five"`, false},
		{"null", false},
	}

	for _, tt := range tests {
		r := decodeRequest(t, `{"recipeId":"`+recipeID+`","dateOfEvent":"2014-12-12","rating":`+tt.rating+`}`)
		_, err := ValidateEvent(r, time.UTC)
		if tt.ok {
			assert.NoError(t, err, "rating %s", tt.rating)
		} else {
			assert.IsType(t, &model.ValidationError{}, err, "rating %s", tt.rating)
		}
	}
}

func TestValidateEvent_Missing(t *testing.T) {
	_, err := ValidateEvent(decodeRequest(t, `{"recipeId":"`+model.NewID()+`","rating":3}`), time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateOfEvent is required")

	_, err = ValidateEvent(decodeRequest(t, `{"recipeId":"`+model.NewID()+`","dateOfEvent":"2014-12-12"}`), time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating is required")

	_, err = ValidateEvent(decodeRequest(t, `{"recipeId":"abc","dateOfEvent":"yesterday","rating":3}`), time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateOfEvent is not a valid date")
}

func TestApplyEvent_Virtuals(t *testing.T) {
	base := func() *model.Event {
		return &model.Event{
			ID:          model.NewID(),
			RecipeID:    model.NewID(),
			DateOfEvent: time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC),
			Rating:      5,
		}
	}

	m := base()
	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"year":2020}`), time.UTC))
	assert.True(t, time.Date(2013, time.December, 12, 0, 0, 0, 0, time.UTC).Equal(m.DateOfEvent))

	m = base()
	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"month":"November"}`), time.UTC))
	assert.True(t, time.Date(2014, time.November, 12, 0, 0, 0, 0, time.UTC).Equal(m.DateOfEvent))

	m = base()
	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"day":"Thursday"}`), time.UTC))
	assert.True(t, time.Date(2014, time.December, 5, 0, 0, 0, 0, time.UTC).Equal(m.DateOfEvent))

	// stored date first, then the derived setters
	m = base()
	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"dateOfEvent":"2015-01-10","month":"x"}`), time.UTC))
	assert.True(t, time.Date(2014, time.December, 10, 0, 0, 0, 0, time.UTC).Equal(m.DateOfEvent))
}

func TestApplyEvent_Partial(t *testing.T) {
	notes := "It was good"
	m := &model.Event{
		ID:          model.NewID(),
		RecipeID:    model.NewID(),
		DateOfEvent: time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC),
		Notes:       &notes,
		Rating:      5,
	}
	recipeID := m.RecipeID

	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"rating":4}`), time.UTC))
	assert.Equal(t, 4, m.Rating)
	assert.Equal(t, recipeID, m.RecipeID)
	assert.Equal(t, "It was good", *m.Notes)

	require.NoError(t, ApplyEvent(m, decodeRequest(t, `{"notes":null}`), time.UTC))
	assert.Nil(t, m.Notes)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		`"2014-12-12T00:00:00.000Z"`,
		`"2014-12-12T00:00:00"`,
		`"2014-12-12"`,
		`"Fri Dec 12 2014 00:00:00 GMT+0000 (Coordinated Universal Time)"`,
		`1418342400000`,
	} {
		got, err := ParseDate(json.RawMessage(in), time.UTC)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s parsed as %s", in, got)
	}

	_, err := ParseDate(json.RawMessage(`true`), time.UTC)
	assert.Error(t, err)
}

func TestParseDate_EpochRange(t *testing.T) {
	got, err := ParseDate(json.RawMessage(`10000000000000`), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2286-11-20T17:46:40.000Z", got.Format(TimestampLayout))

	got, err = ParseDate(json.RawMessage(`-8640000000000000`), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -271821, got.Year())

	for _, in := range []string{`8640000000000001`, `-8640000000000001`, `99999999999999999999`} {
		_, err := ParseDate(json.RawMessage(in), time.UTC)
		assert.Error(t, err, in)
	}
}

func TestValidateEvent_EpochOutOfRange(t *testing.T) {
	r := decodeRequest(t, `{"recipeId":"`+model.NewID()+`","dateOfEvent":8640000000000001,"rating":3}`)
	_, err := ValidateEvent(r, time.UTC)
	require.IsType(t, &model.ValidationError{}, err)
	assert.Contains(t, err.Error(), "dateOfEvent is not a valid date")
}

func TestApplyEvent_CanonicalRecipeID(t *testing.T) {
	id := model.NewID()
	for _, spelling := range []string{
		strings.ToUpper(id),
		"{" + id + "}",
		"urn:uuid:" + id,
	} {
		m, err := ValidateEvent(decodeRequest(t, `{"recipeId":"`+spelling+`","dateOfEvent":"2014-12-12","rating":3}`), time.UTC)
		require.NoError(t, err, spelling)
		assert.Equal(t, id, m.RecipeID, spelling)
	}
}

func TestEventJSON(t *testing.T) {
	m := &model.Event{
		ID:          "5d7b1a9e-3d1c-4f60-8c5b-2f1f0e1d2c3b",
		RecipeID:    "9a0e6f3c-1b2d-4c5e-8f7a-6b5c4d3e2f1a",
		DateOfEvent: time.Date(2014, time.December, 12, 0, 0, 0, 0, time.UTC),
		Rating:      5,
	}

	out, err := json.Marshal(NewEvent(m))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "5d7b1a9e-3d1c-4f60-8c5b-2f1f0e1d2c3b",
		"recipeId": "9a0e6f3c-1b2d-4c5e-8f7a-6b5c4d3e2f1a",
		"dateOfEvent": "2014-12-12T00:00:00.000Z",
		"notes": null,
		"rating": 5,
		"__v": 0
	}`, string(out))

	recipe := &model.Recipe{ID: m.RecipeID, Name: "cookies", Directions: []string{"bake"}}
	out, err = json.Marshal(NewPopulatedEvent(m, recipe))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "5d7b1a9e-3d1c-4f60-8c5b-2f1f0e1d2c3b",
		"recipeId": {
			"_id": "9a0e6f3c-1b2d-4c5e-8f7a-6b5c4d3e2f1a",
			"name": "cookies",
			"ingredients": [],
			"directions": ["bake"],
			"__v": 0
		},
		"dateOfEvent": "2014-12-12T00:00:00.000Z",
		"notes": null,
		"rating": 5,
		"__v": 0
	}`, string(out))

	out, err = json.Marshal(NewPopulatedEvent(m, nil))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"recipeId":null`)
}
