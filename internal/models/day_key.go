package models

import (
	"strconv"
	"time"
)

const secondsPerDay = 86400

// DayKey is a UNIX timestamp truncated to the start of its UTC day.
type DayKey int64

// DayBucket maps a UNIX timestamp to the midnight (UTC) that starts its day.
// Timestamps before the epoch floor to the preceding midnight.
func DayBucket(timestamp int64) DayKey {
	rem := timestamp % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
	}
	return DayKey(timestamp - rem)
}

func (d DayKey) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

func (d DayKey) String() string {
	return strconv.FormatInt(int64(d), 10)
}
