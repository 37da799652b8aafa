package binarytime

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/roach88/binarytime/internal/errcode"
)

// token matches one <number><unit> pair at the start of the input.
var token = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)(\p{L}+)`)

var unitMillis = map[string]int64{
	"ms": 1,
	"s":  MillisPerSecond,
	"m":  MillisPerMinute,
	"h":  MillisPerHour,
	"d":  MillisPerDay,
}

// Parse reads a duration such as "1.5s", "2h30m45s" or "-1d12h". Units are
// ms, s, m, h and d in any case. The total is rounded half away from zero to
// a whole millisecond.
//
// Empty input fails with EmptyInput; anything that is not a sequence of
// number-unit pairs, or names an unknown unit, fails with FormatError.
func Parse(s string) (Duration, error) {
	const op = "binarytime.Parse"

	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, errcode.New(errcode.EmptyInput, op, "empty duration string")
	}

	input := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return Duration{}, errcode.Newf(errcode.FormatError, op, "invalid duration format %q", input)
	}

	fold := cases.Fold()
	total := decimal.Zero
	for s != "" {
		m := token.FindStringSubmatch(s)
		if m == nil {
			return Duration{}, errcode.Newf(errcode.FormatError, op, "invalid duration format %q", input)
		}

		unit := fold.String(m[2])
		scale, ok := unitMillis[unit]
		if !ok {
			return Duration{}, errcode.Newf(errcode.FormatError, op, "unknown time unit %q", m[2])
		}

		n, err := decimal.NewFromString(m[1])
		if err != nil {
			return Duration{}, errcode.Wrap(errcode.FormatError, op, "invalid number", err)
		}
		total = total.Add(n.Mul(decimal.NewFromInt(scale)))
		s = s[len(m[0]):]
	}

	ms := total.Round(0).BigInt()
	if neg {
		ms.Neg(ms)
	}
	return Duration{value: fromMillisBig(ms)}, nil
}

// String renders d as days, hours, minutes and seconds, largest first,
// omitting zero parts. Seconds carry a decimal fraction when there is a
// sub-second remainder. Spans under a second render as milliseconds and
// the zero span as "0ms". Sub-millisecond residue is not shown.
func (d Duration) String() string {
	ms := millisBig(d.value)
	if ms.Sign() == 0 {
		return "0ms"
	}

	var b strings.Builder
	if ms.Sign() < 0 {
		b.WriteByte('-')
		ms.Neg(ms)
	}

	if !ms.IsUint64() || ms.Uint64() >= MillisPerSecond {
		writeParts(&b, ms)
		return b.String()
	}

	b.WriteString(ms.String())
	b.WriteString("ms")
	return b.String()
}

// writeParts writes a non-negative millisecond count of at least one
// second.
func writeParts(b *strings.Builder, ms *big.Int) {
	days, rest := new(big.Int).QuoRem(ms, dayMillis, new(big.Int))
	if days.Sign() > 0 {
		b.WriteString(days.String())
		b.WriteByte('d')
	}

	r := rest.Int64()
	hours, r := r/MillisPerHour, r%MillisPerHour
	minutes, r := r/MillisPerMinute, r%MillisPerMinute
	seconds, frac := r/MillisPerSecond, r%MillisPerSecond

	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10))
		b.WriteByte('h')
	}
	if minutes > 0 {
		b.WriteString(strconv.FormatInt(minutes, 10))
		b.WriteByte('m')
	}
	if seconds > 0 || frac > 0 {
		b.WriteString(strconv.FormatInt(seconds, 10))
		if frac > 0 {
			// three digits, trailing zeros trimmed: 500 -> "5", 50 -> "05"
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(strconv.FormatInt(1000+frac, 10)[1:], "0"))
		}
		b.WriteByte('s')
	}
}
