package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestGetters(t *testing.T) {
	e := &Event{DateOfEvent: date(2014, time.December, 12)}

	assert.Equal(t, "Friday", e.Day())
	assert.Equal(t, "December", e.Month())
	assert.Equal(t, 2014, e.Year())
}

func TestSetYear(t *testing.T) {
	e := &Event{DateOfEvent: date(2014, time.December, 12)}
	e.SetYear(2013)
	assert.True(t, date(2013, time.December, 12).Equal(e.DateOfEvent))

	// the assigned value is not used
	e.SetYear(2020)
	assert.True(t, date(2012, time.December, 12).Equal(e.DateOfEvent))
}

func TestSetMonth(t *testing.T) {
	e := &Event{DateOfEvent: date(2014, time.December, 12)}
	e.SetMonth("November")
	assert.True(t, date(2014, time.November, 12).Equal(e.DateOfEvent))

	e.SetMonth("December")
	assert.True(t, date(2014, time.October, 12).Equal(e.DateOfEvent))
}

func TestSetDay(t *testing.T) {
	e := &Event{DateOfEvent: date(2014, time.December, 12)}
	e.SetDay("Thursday")
	assert.True(t, date(2014, time.December, 5).Equal(e.DateOfEvent))
}

func TestSetters_Normalization(t *testing.T) {
	tests := []struct {
		name string
		fn   func(time.Time) time.Time
		in   time.Time
		want time.Time
	}{
		{"month from january", SetMonth, date(2015, time.January, 20), date(2014, time.December, 20)},
		{"month overflow", SetMonth, date(2015, time.March, 31), date(2015, time.March, 3)},
		{"year from leap day", SetYear, date(2016, time.February, 29), date(2015, time.March, 1)},
		// 2014-12-07 is a Sunday
		{"day on sunday", SetDay, date(2014, time.December, 7), date(2014, time.November, 30)},
		{"day on saturday", SetDay, date(2014, time.December, 13), date(2014, time.December, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.in)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSetters_KeepTimeOfDay(t *testing.T) {
	loc := time.FixedZone("test", -8*60*60)
	in := time.Date(2014, time.December, 12, 18, 30, 15, 0, loc)

	got := SetYear(in)
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 15, got.Second())
	assert.Equal(t, loc, got.Location())
}
