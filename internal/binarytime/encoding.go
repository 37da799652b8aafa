package binarytime

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/roach88/binarytime/internal/codec"
	"github.com/roach88/binarytime/internal/errcode"
	"github.com/roach88/binarytime/internal/fixed128"
)

// Coarse hex window: the last integer byte and the first fractional byte,
// i.e. days modulo 256 and the day in 1/256ths (about 5.6 minutes).
const (
	coarseHigh = codec.MaxHigh
	coarseLow  = codec.MinLow
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Granularity selects how many integer (Upper) and fractional (Lower) bytes
// HexGranular renders. Values outside 1..8 fall back to 2 when not positive
// and are capped at 8.
type Granularity struct {
	Upper int
	Lower int
}

// DefaultGranularity shows two bytes on each side: days up to 65535 and the
// day in 1/65536ths (about 1.3 seconds).
var DefaultGranularity = Granularity{Upper: 2, Lower: 2}

func (g Granularity) window() (high, low int) {
	upper, lower := g.Upper, g.Lower
	if upper <= 0 {
		upper = 2
	}
	if lower <= 0 {
		lower = 2
	}
	upper = min(upper, 8)
	lower = min(lower, 8)
	return codec.Boundary - upper, codec.Boundary + lower
}

func mustHex(v fixed128.Fixed128, high, low int) string {
	s, err := v.HexWithPrecision(high, low)
	if err != nil {
		// callers pass windows inside the valid range
		panic(err)
	}
	return s
}

// String returns the instant in RFC 3339 with milliseconds, in UTC.
func (t Timestamp) String() string {
	return t.Time().Format(isoMillis)
}

// Bytes returns the 16-byte two's complement form.
func (t Timestamp) Bytes() []byte {
	return t.value.Bytes()
}

// Hex returns the coarse hex form, one byte each side of the point.
func (t Timestamp) Hex() string {
	return mustHex(t.value, coarseHigh, coarseLow)
}

// HexFine returns the auto-precision hex form. It is exact.
func (t Timestamp) HexFine() string {
	return t.value.String()
}

// HexWithPrecision returns the hex form with an explicit byte window.
func (t Timestamp) HexWithPrecision(high, low int) (string, error) {
	return t.value.HexWithPrecision(high, low)
}

// HexGranular returns the hex form with g.Upper integer and g.Lower
// fractional bytes.
func (t Timestamp) HexGranular(g Granularity) string {
	high, low := g.window()
	return mustHex(t.value, high, low)
}

// Base64 returns the base64 sign-magnitude form.
func (t Timestamp) Base64() string {
	return t.value.Base64()
}

// ParseHex parses a hex form produced by any of the Hex methods.
func ParseHex(s string) (Timestamp, error) {
	v, err := fixed128.ParseHex(s)
	if err != nil {
		return Epoch, err
	}
	return Timestamp{value: v}, nil
}

// ParseBase64 parses the base64 form.
func ParseBase64(s string) (Timestamp, error) {
	v, err := fixed128.ParseBase64(s)
	if err != nil {
		return Epoch, err
	}
	return Timestamp{value: v}, nil
}

// ParseTime parses an RFC 3339 time string.
func ParseTime(s string) (Timestamp, error) {
	tm, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return Epoch, errcode.Wrap(errcode.FormatError, "binarytime.ParseTime", "expected RFC 3339", err)
	}
	return FromTime(tm), nil
}

// MarshalText implements encoding.TextMarshaler with the exact hex form.
func (t Timestamp) MarshalText() ([]byte, error) {
	return t.value.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	return t.value.UnmarshalText(text)
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.value.Value()
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	return t.value.Scan(src)
}

// Bytes returns the 16-byte two's complement form.
func (d Duration) Bytes() []byte {
	return d.value.Bytes()
}

// Hex returns the auto-precision hex form.
func (d Duration) Hex() string {
	return d.value.String()
}

// HexWithPrecision returns the hex form with an explicit byte window.
func (d Duration) HexWithPrecision(high, low int) (string, error) {
	return d.value.HexWithPrecision(high, low)
}

// Base64 returns the base64 sign-magnitude form.
func (d Duration) Base64() string {
	return d.value.Base64()
}

// ParseDurationHex parses the hex form of a duration.
func ParseDurationHex(s string) (Duration, error) {
	v, err := fixed128.ParseHex(s)
	if err != nil {
		return Duration{}, err
	}
	return Duration{value: v}, nil
}

// ParseDurationBase64 parses the base64 form of a duration.
func ParseDurationBase64(s string) (Duration, error) {
	v, err := fixed128.ParseBase64(s)
	if err != nil {
		return Duration{}, err
	}
	return Duration{value: v}, nil
}

// MarshalText implements encoding.TextMarshaler with the duration grammar,
// e.g. "2h30m45s".
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements driver.Valuer.
func (d Duration) Value() (driver.Value, error) {
	return d.value.Value()
}

// Scan implements sql.Scanner.
func (d *Duration) Scan(src any) error {
	return d.value.Scan(src)
}
