package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want DayOfWeek
		ok   bool
	}{
		{"MON", Monday, true},
		{"monday", Monday, true},
		{"  Tues ", Tuesday, true},
		{"THURS", Thursday, true},
		{"Saturday", Saturday, true},
		{"", "", false},
		{"someday", "", false},
		{"9:00-9:50", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDay(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
