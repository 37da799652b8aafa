package binarytime

import (
	"math/big"
	"time"

	"github.com/roach88/binarytime/internal/errcode"
	"github.com/roach88/binarytime/internal/fixed128"
)

// Duration is a signed span measured in days. The zero value is empty.
type Duration struct {
	value fixed128.Fixed128
}

func FromMillis(n int64) Duration  { return Duration{value: fromUnits(n, 1)} }
func FromSeconds(n int64) Duration { return Duration{value: fromUnits(n, MillisPerSecond)} }
func FromMinutes(n int64) Duration { return Duration{value: fromUnits(n, MillisPerMinute)} }
func FromHours(n int64) Duration   { return Duration{value: fromUnits(n, MillisPerHour)} }
func FromDays(n int64) Duration    { return Duration{value: fromUnits(n, MillisPerDay)} }

// FromStd converts d at millisecond resolution, truncating toward zero.
func FromStd(d time.Duration) Duration {
	return FromMillis(d.Milliseconds())
}

// DurationFromFixed128 wraps a day count.
func DurationFromFixed128(v fixed128.Fixed128) Duration {
	return Duration{value: v}
}

// Between returns to - from.
func Between(from, to Timestamp) Duration {
	return from.Until(to)
}

// Millis returns the span in milliseconds.
func (d Duration) Millis() int64 {
	return millis(d.value)
}

// Seconds, Minutes, Hours and Days truncate toward zero.
func (d Duration) Seconds() int64 { return d.Millis() / MillisPerSecond }
func (d Duration) Minutes() int64 { return d.Millis() / MillisPerMinute }
func (d Duration) Hours() int64   { return d.Millis() / MillisPerHour }
func (d Duration) Days() int64    { return d.Millis() / MillisPerDay }

// Std returns d as a time.Duration. Spans beyond about 292 years wrap.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Millis()) * time.Millisecond
}

// Fixed128 returns the underlying day count.
func (d Duration) Fixed128() fixed128.Fixed128 {
	return d.value
}

func (d Duration) IsZero() bool     { return d.value.IsZero() }
func (d Duration) IsNegative() bool { return d.value.IsNeg() }

// Equal reports whether d and e are the same span.
func (d Duration) Equal(e Duration) bool {
	return d.value.Equal(e.value)
}

// Cmp returns -1, 0 or +1 as d is shorter than, equal to or longer than e.
func (d Duration) Cmp(e Duration) int {
	return d.value.Cmp(e.value)
}

// Add returns d + e.
func (d Duration) Add(e Duration) Duration {
	return Duration{value: d.value.Add(e.value)}
}

// Sub returns d - e.
func (d Duration) Sub(e Duration) Duration {
	return Duration{value: d.value.Sub(e.value)}
}

// MulScalar returns d scaled by n, computed on whole milliseconds.
func (d Duration) MulScalar(n int64) Duration {
	ms := millisBig(d.value)
	ms.Mul(ms, big.NewInt(n))
	return Duration{value: fromMillisBig(ms)}
}

// DivScalar returns d divided by n, computed on whole milliseconds and
// truncated toward zero. It fails with DivisionByZero if n is zero.
func (d Duration) DivScalar(n int64) (Duration, error) {
	if n == 0 {
		return Duration{}, errcode.New(errcode.DivisionByZero, "binarytime.DivScalar", "scalar is zero")
	}
	ms := millisBig(d.value)
	ms.Quo(ms, big.NewInt(n))
	return Duration{value: fromMillisBig(ms)}, nil
}

// Abs returns |d|.
func (d Duration) Abs() Duration {
	return Duration{value: d.value.Abs()}
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{value: d.value.Neg()}
}
