package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBeginDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{"typical row", "4/28/2011 0:00:00", time.Date(2011, time.April, 28, 0, 0, 0, 0, time.UTC)},
		{"padded month and day", "04/08/1965 0:00:00", time.Date(1965, time.April, 8, 0, 0, 0, 0, time.UTC)},
		{"date only, no time portion", "12/31/1999", time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"leading whitespace", "  6/9/1984 0:00:00", time.Date(1984, time.June, 9, 0, 0, 0, 0, time.UTC)},
		{"empty string", "", time.Time{}},
		{"whitespace only", "   ", time.Time{}},
		{"two-digit year", "4/28/11 0:00:00", time.Time{}},
		{"month out of range", "13/28/2011 0:00:00", time.Time{}},
		{"day out of range", "2/30/2011 0:00:00", time.Time{}},
		{"not a date at all", "yesterday morning", time.Time{}},
		{"wrong separator", "2011-04-28 0:00:00", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBeginDate(tt.raw))
		})
	}
}
