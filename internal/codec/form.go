package codec

import (
	"encoding/binary"

	"github.com/roach88/binarytime/internal/errcode"
)

// Layout of the sign-magnitude form.
const (
	Size               = 17
	TwosComplementSize = 16
	SignIndex          = 0
	Boundary           = 9 // index of the first fractional byte

	SignPositive byte = 0
	SignNegative byte = 1
)

// Form is the 17-byte sign-magnitude encoding.
type Form [Size]byte

// FromWords builds a Form from a sign and the magnitude's high and low words.
func FromWords(neg bool, hi, lo uint64) Form {
	var f Form
	if neg {
		f[SignIndex] = SignNegative
	}
	binary.BigEndian.PutUint64(f[1:Boundary], hi)
	binary.BigEndian.PutUint64(f[Boundary:], lo)
	return f
}

// Words returns the sign and the magnitude's high and low words.
func (f Form) Words() (neg bool, hi, lo uint64) {
	neg = f[SignIndex] == SignNegative
	hi = binary.BigEndian.Uint64(f[1:Boundary])
	lo = binary.BigEndian.Uint64(f[Boundary:])
	return neg, hi, lo
}

// Negative reports whether the sign byte is set.
func (f Form) Negative() bool {
	return f[SignIndex] == SignNegative
}

// IsZero reports whether the magnitude is zero. The sign byte is ignored,
// so "-00.00" decodes to zero.
func (f Form) IsZero() bool {
	for _, b := range f[1:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the form as a slice.
func (f Form) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, f[:])
	return out
}

// Decode validates a 17-byte sign-magnitude slice.
func Decode(b []byte) (Form, error) {
	var f Form
	if len(b) != Size {
		return f, errcode.Newf(errcode.InvalidBinary, "codec.Decode", "expected %d bytes, got %d", Size, len(b))
	}
	if b[SignIndex] != SignPositive && b[SignIndex] != SignNegative {
		return f, errcode.Newf(errcode.InvalidBinary, "codec.Decode", "invalid sign byte %02X", b[SignIndex])
	}
	copy(f[:], b)
	return f, nil
}

// PutTwosComplement encodes raw 128-bit words big-endian into 16 bytes.
func PutTwosComplement(hi, lo uint64) [TwosComplementSize]byte {
	var b [TwosComplementSize]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return b
}

// TwosComplementWords decodes 16 big-endian bytes into raw 128-bit words.
func TwosComplementWords(b []byte) (hi, lo uint64, err error) {
	if len(b) != TwosComplementSize {
		return 0, 0, errcode.Newf(errcode.InvalidBinary, "codec.TwosComplementWords", "expected %d bytes, got %d", TwosComplementSize, len(b))
	}
	return binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]), nil
}
