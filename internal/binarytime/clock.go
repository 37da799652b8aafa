package binarytime

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() Timestamp
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock instant.
func (SystemClock) Now() Timestamp {
	return FromTime(time.Now())
}
