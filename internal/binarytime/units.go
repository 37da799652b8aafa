package binarytime

import (
	"math/big"

	"github.com/roach88/binarytime/internal/fixed128"
)

// Length of a day in each unit.
const (
	DayMilliseconds = 86_400_000
	DaySeconds      = 86_400
	DayMinutes      = 1_440
	DayHours        = 24
)

// Milliseconds per unit.
const (
	MillisPerSecond = 1_000
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = DayMilliseconds
)

var dayMillis = big.NewInt(DayMilliseconds)

// fromMillisBig returns ms as a fraction of a day.
func fromMillisBig(ms *big.Int) fixed128.Fixed128 {
	f, err := fixed128.NewBig(ms, dayMillis)
	if err != nil {
		// the denominator is a non-zero constant
		panic(err)
	}
	return f
}

// fromUnits returns n units of unitMillis milliseconds as a fraction of a
// day. The product is formed without int64 overflow.
func fromUnits(n, unitMillis int64) fixed128.Fixed128 {
	ms := new(big.Int).Mul(big.NewInt(n), big.NewInt(unitMillis))
	return fromMillisBig(ms)
}

// millisBig recovers the millisecond count of a day fraction.
func millisBig(f fixed128.Fixed128) *big.Int {
	return f.MulBigInt(dayMillis)
}

// millis is millisBig truncated to an int64. Values built from int64
// milliseconds always fit.
func millis(f fixed128.Fixed128) int64 {
	return millisBig(f).Int64()
}
