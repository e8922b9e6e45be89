package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		want          time.Time
		wantMalformed bool
	}{
		{name: "calendar date", input: `"2020-03-01"`, want: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"2020-03-01T15:04:05+03:00"`, want: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: `""`},
		{name: "null", input: `null`},
		{name: "not a date", input: `"someday"`, wantMalformed: true},
		{name: "not a string", input: `20200301`, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))

			assert.Equal(t, tt.wantMalformed, d.Malformed())
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}
