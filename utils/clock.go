package utils

import "time"

// Clock returns the current time. Services sample it once per operation.
type Clock func() time.Time

// SystemClock reads the wall clock
func SystemClock() time.Time {
	return time.Now()
}
