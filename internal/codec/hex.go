package codec

import (
	"encoding/hex"
	"strings"

	"github.com/roach88/binarytime/internal/errcode"
)

// Valid explicit precision bounds. high is the first integer byte shown,
// low is one past the last fractional byte shown.
const (
	MinHigh = 1
	MaxHigh = Boundary - 1
	MinLow  = Boundary + 1
	MaxLow  = Size

	halfBytes = Boundary - 1
)

const zeroHex = "00.00"

// Hex renders the form with an explicit byte window.
func (f Form) Hex(high, low int) (string, error) {
	if high < MinHigh || high > MaxHigh || low < MinLow || low > MaxLow {
		return "", errcode.Newf(errcode.InvalidPrecision, "codec.Hex", "high=%d low=%d", high, low)
	}

	var s strings.Builder
	s.Grow(2*(low-high) + 2)
	if f.Negative() {
		s.WriteByte('-')
	}
	s.WriteString(strings.ToUpper(hex.EncodeToString(f[high:Boundary])))
	s.WriteByte('.')
	s.WriteString(strings.ToUpper(hex.EncodeToString(f[Boundary:low])))
	return s.String(), nil
}

// HexAuto renders the form with leading zero integer bytes and trailing zero
// fractional bytes trimmed, keeping at least one byte on each side. A zero
// magnitude renders as "00.00" regardless of the sign byte.
func (f Form) HexAuto() string {
	if f.IsZero() {
		return zeroHex
	}

	high := MinHigh
	for high < MaxHigh && f[high] == 0 {
		high++
	}
	low := MaxLow
	for low > MinLow && f[low-1] == 0 {
		low--
	}

	s, err := f.Hex(high, low)
	if err != nil {
		// high and low are clamped to their valid ranges above
		panic(err)
	}
	return s
}

// ParseHex parses ["-"]HI.LO. Each half is 1 to 16 hex digits; an odd digit
// count is padded with a leading zero nibble. HI is right-aligned into the
// integer bytes, LO left-aligned into the fractional bytes.
func ParseHex(s string) (Form, error) {
	const op = "codec.ParseHex"
	var f Form

	s = strings.TrimSpace(s)
	if s == "" {
		return f, errcode.New(errcode.EmptyInput, op, "empty hex string")
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return f, errcode.Newf(errcode.FormatError, op, "expected format \"HI.LO\", got %q", s)
	}

	hi, err := decodeHalf(op, parts[0])
	if err != nil {
		return f, err
	}
	lo, err := decodeHalf(op, parts[1])
	if err != nil {
		return f, err
	}

	copy(f[Boundary-len(hi):Boundary], hi)
	copy(f[Boundary:], lo)
	if neg {
		f[SignIndex] = SignNegative
	}
	return f, nil
}

func decodeHalf(op, s string) ([]byte, error) {
	if s == "" {
		return nil, errcode.New(errcode.FormatError, op, "expected format \"HI.LO\", empty half")
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errcode.Wrap(errcode.FormatError, op, "invalid hex digits", err)
	}
	if len(b) > halfBytes {
		return nil, errcode.Newf(errcode.FormatError, op, "hex half too wide: %d bytes", len(b))
	}
	return b, nil
}
