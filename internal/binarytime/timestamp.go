package binarytime

import (
	"time"

	"github.com/roach88/binarytime/internal/fixed128"
)

// Timestamp is an instant measured in days since the Unix epoch.
// The zero value is the epoch.
type Timestamp struct {
	value fixed128.Fixed128
}

// Epoch is 1970-01-01T00:00:00Z.
var Epoch = Timestamp{}

// FromUnixMilli returns the instant ms milliseconds after the epoch.
func FromUnixMilli(ms int64) Timestamp {
	return Timestamp{value: fromUnits(ms, 1)}
}

// FromUnixSeconds returns the instant s seconds after the epoch.
func FromUnixSeconds(s int64) Timestamp {
	return Timestamp{value: fromUnits(s, MillisPerSecond)}
}

// FromTime converts t at millisecond resolution. Sub-millisecond precision
// is truncated.
func FromTime(t time.Time) Timestamp {
	return FromUnixMilli(t.UnixMilli())
}

// Now returns the current instant.
func Now() Timestamp {
	return SystemClock{}.Now()
}

// FromFixed128 wraps a day count.
func FromFixed128(v fixed128.Fixed128) Timestamp {
	return Timestamp{value: v}
}

// UnixMilli returns the milliseconds since the epoch.
func (t Timestamp) UnixMilli() int64 {
	return millis(t.value)
}

// UnixSeconds returns the whole seconds since the epoch, truncated toward zero.
func (t Timestamp) UnixSeconds() int64 {
	return t.UnixMilli() / MillisPerSecond
}

// Time returns the instant as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}

// Fixed128 returns the underlying day count.
func (t Timestamp) Fixed128() fixed128.Fixed128 {
	return t.value
}

// IsZero reports whether t is the epoch.
func (t Timestamp) IsZero() bool {
	return t.value.IsZero()
}

// Equal reports whether t and u are the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.value.Equal(u.value)
}

// Cmp returns -1, 0 or +1 as t is before, equal to or after u.
func (t Timestamp) Cmp(u Timestamp) int {
	return t.value.Cmp(u.value)
}

// Before reports whether t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.Cmp(u) < 0
}

// After reports whether t is after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.Cmp(u) > 0
}

func (t Timestamp) shift(n, unitMillis int64) Timestamp {
	return Timestamp{value: t.value.Add(fromUnits(n, unitMillis))}
}

func (t Timestamp) unshift(n, unitMillis int64) Timestamp {
	return Timestamp{value: t.value.Sub(fromUnits(n, unitMillis))}
}

func (t Timestamp) AddMillis(n int64) Timestamp  { return t.shift(n, 1) }
func (t Timestamp) SubMillis(n int64) Timestamp  { return t.unshift(n, 1) }
func (t Timestamp) AddSeconds(n int64) Timestamp { return t.shift(n, MillisPerSecond) }
func (t Timestamp) SubSeconds(n int64) Timestamp { return t.unshift(n, MillisPerSecond) }
func (t Timestamp) AddMinutes(n int64) Timestamp { return t.shift(n, MillisPerMinute) }
func (t Timestamp) SubMinutes(n int64) Timestamp { return t.unshift(n, MillisPerMinute) }
func (t Timestamp) AddHours(n int64) Timestamp   { return t.shift(n, MillisPerHour) }
func (t Timestamp) SubHours(n int64) Timestamp   { return t.unshift(n, MillisPerHour) }
func (t Timestamp) AddDays(n int64) Timestamp    { return t.shift(n, MillisPerDay) }
func (t Timestamp) SubDays(n int64) Timestamp    { return t.unshift(n, MillisPerDay) }

// Add returns t shifted forward by d.
func (t Timestamp) Add(d Duration) Timestamp {
	return Timestamp{value: t.value.Add(d.value)}
}

// Sub returns t shifted back by d.
func (t Timestamp) Sub(d Duration) Timestamp {
	return Timestamp{value: t.value.Sub(d.value)}
}

// Until returns u - t: positive when u is after t.
func (t Timestamp) Until(u Timestamp) Duration {
	return Duration{value: u.value.Sub(t.value)}
}

// Since returns t - u: positive when t is after u.
func (t Timestamp) Since(u Timestamp) Duration {
	return Duration{value: t.value.Sub(u.value)}
}
