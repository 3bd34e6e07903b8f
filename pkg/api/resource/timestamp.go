package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp marshals as a TimestampLayout string
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(data, time.UTC)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// maxEpochMillis bounds numeric dates to the range a JS Date can hold.
const maxEpochMillis = 8640000000000000

// Accepted date strings. Layouts without a zone are read in the
// service location.
var dateLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02", false},
	{"Mon Jan 02 2006 15:04:05 GMT-0700", true},
	{time.RFC1123Z, true},
	{time.RFC1123, true},
}

// ParseDate reads a JSON date value: a string in one of the accepted layouts
// or a number of milliseconds since the Unix epoch.
func ParseDate(raw json.RawMessage, loc *time.Location) (time.Time, error) {
	var v interface{}
	d := json.NewDecoder(strings.NewReader(string(raw)))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return time.Time{}, err
	}

	switch v := v.(type) {
	case json.Number:
		ms, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil || ms > maxEpochMillis || ms < -maxEpochMillis {
			return time.Time{}, fmt.Errorf("invalid epoch milliseconds %s", v)
		}
		return time.UnixMilli(ms).UTC(), nil
	case string:
		// JS Date strings append the zone name, e.g. "(Pacific Standard Time)"
		if i := strings.Index(v, " ("); i > 0 {
			v = v[:i]
		}
		for _, l := range dateLayouts {
			var t time.Time
			var err error
			if l.zoned {
				t, err = time.Parse(l.layout, v)
			} else {
				t, err = time.ParseInLocation(l.layout, v, loc)
			}
			if err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", v)
	default:
		return time.Time{}, fmt.Errorf("date must be a string or a number")
	}
}
