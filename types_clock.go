package ledger

import (
	"fmt"
	"strings"
	"time"
)

const readClockFormat = "15:4:5" // Permissive read time format (allows single-digit fields).

// ClockFormat is the format used to represent times of day as strings.
const ClockFormat = "15:04:05" // write time format

// Clock represents a local time of day with second precision and no time zone.
type Clock struct {
	h int // hour
	m int // minute
	s int // second
}

// NewClock returns a normalized Clock for the given hour, minute, and second.
func NewClock(hour, min, sec int) Clock {
	c := Clock{}
	c.h, c.m, c.s = time.Date(2000, time.January, 1, hour, min, sec, 0, time.UTC).Clock()
	return c
}

// Now returns the current local time of day, truncated to the second.
func Now() Clock {
	return NewClock(time.Now().Clock())
}

// Hour returns the hour within the day, in [0, 23].
func (c Clock) Hour() int { return c.h }

// Minute returns the minute within the hour, in [0, 59].
func (c Clock) Minute() int { return c.m }

// Second returns the second within the minute, in [0, 59].
func (c Clock) Second() int { return c.s }

// String formats the time of day in its standard 24-hour format.
func (c Clock) String() string { return c.time().Format(ClockFormat) }

// time returns a time.Time that is a canonical representation of that time of day.
func (c Clock) time() time.Time {
	return time.Date(2000, time.January, 1, c.h, c.m, c.s, 0, time.UTC)
}

// ParseClock parses a Clock from a string. It is lenient and accepts formats like "9:5:0".
func ParseClock(str string) (Clock, error) {
	at, err := time.Parse(readClockFormat, strings.TrimSpace(str))
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return NewClock(at.Clock()), nil
}
