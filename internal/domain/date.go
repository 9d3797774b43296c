package domain

import (
	"strings"
	"time"
)

// beginDateLayout matches the date portion of BGN_DATE, e.g. "4/28/2011".
// Month and day may be one or two digits; the year must be four.
const beginDateLayout = "1/2/2006"

// ParseBeginDate extracts the calendar date from a raw BGN_DATE value such as
// "4/28/2011 0:00:00". Only the first whitespace-delimited token is
// considered. The function is total: anything that does not parse as
// month/day/4-digit-year yields the zero time, never an error, and the record
// is simply excluded from year-bucketed views downstream.
func ParseBeginDate(raw string) time.Time {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return time.Time{}
	}

	t, err := time.Parse(beginDateLayout, fields[0])
	if err != nil {
		return time.Time{}
	}
	return t
}
