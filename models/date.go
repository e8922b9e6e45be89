package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted in request bodies
// alongside RFC3339 timestamps.
const DateLayout = "2006-01-02"

// Date is a calendar date used by experience and education entries.
// It unmarshals from either "YYYY-MM-DD" or an RFC3339 timestamp and
// marshals as RFC3339 in UTC.
type Date struct {
	time.Time

	// malformed holds request input that is not a date; the value stays zero.
	malformed string
}

// NewDate truncates t to midnight UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s as "YYYY-MM-DD" or RFC3339.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

// Malformed reports whether the date was decoded from input that is not a
// date. Decoding does not fail on such input so that validation can answer
// with a field error.
func (d Date) Malformed() bool {
	return d.malformed != ""
}

// UnmarshalJSON implements [json.Unmarshaler]. An empty string leaves the
// date zero so that validation can report the field as missing.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{malformed: string(b)}
		return nil
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{malformed: s}
		return nil
	}
	*d = parsed
	return nil
}
