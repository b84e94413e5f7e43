package testutil

import (
	"time"

	"github.com/preston-bernstein/nhl-edge-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseStartTime parses a start_time_utc value the way the mapper does, or panics.
func MustParseStartTime(v string) time.Time {
	t, ok := timeutil.ParseISO(v)
	if !ok {
		panic("testutil: invalid start time " + v)
	}
	return t
}

// MustLoadLocation loads an IANA zone or panics.
func MustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
