package timex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// zonelessLayout is the ISO 8601 form written without an offset, as in
// "2026-10-14T09:00:00.123456". A fractional second is optional when parsing.
const zonelessLayout = "2006-01-02T15:04:05"

// ParseTimestamp reads s as RFC 3339 or, failing that, as a zoneless ISO
// timestamp in loc. A nil loc means time.Local.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(zonelessLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

// Timestamp is a time.Time that also decodes zoneless ISO timestamps from
// JSON. It encodes as RFC 3339.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s, nil)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
