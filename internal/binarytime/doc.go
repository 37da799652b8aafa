// Package binarytime provides Timestamp and Duration, two façades over
// fixed128.Fixed128 measured in days.
//
// A Timestamp is the number of days since 1970-01-01T00:00:00Z; a Duration
// is a signed number of days. The integer word of the underlying value holds
// whole days and the fractional word the position within a day, so the hex
// form reads as day.fraction:
//
//	ts := binarytime.FromUnixMilli(1672531200000)
//	ts.Hex()      // "4B9E.00"
//	ts.String()   // "2023-01-01T00:00:00.000Z"
//
// CONVERSIONS:
//
// Every conversion to or from milliseconds goes through the rational
// constructor with a denominator of DayMilliseconds and back through
// Fixed128.MulBigInt, which recovers the exact millisecond count. Coarser
// units (seconds, minutes, hours, days) are derived from milliseconds and
// truncate toward zero.
//
// DURATION TEXT:
//
// Parse accepts an optional leading "-" followed by one or more
// <number><unit> tokens with units ms, s, m, h and d in any case:
//
//	d, _ := binarytime.Parse("2h30m45s")
//	d.Millis() // 9045000
//	d.String() // "2h30m45s"
//
// All values are immutable and safe to share between goroutines.
package binarytime
