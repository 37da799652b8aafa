package fixed128

import (
	"github.com/roach88/binarytime/internal/codec"
)

// Bytes returns the 16-byte big-endian two's complement form of the raw value.
func (f Fixed128) Bytes() []byte {
	b := codec.PutTwosComplement(f.hi, f.lo)
	return b[:]
}

// FromBytes decodes the 16-byte two's complement form.
func FromBytes(b []byte) (Fixed128, error) {
	hi, lo, err := codec.TwosComplementWords(b)
	if err != nil {
		return Zero, err
	}
	return FromRaw(hi, lo), nil
}

// Form returns the 17-byte sign-magnitude form.
func (f Fixed128) Form() codec.Form {
	neg, hi, lo := f.disassemble()
	return codec.FromWords(neg, hi, lo)
}

// FromForm converts a sign-magnitude form. A negative zero is zero.
func FromForm(form codec.Form) Fixed128 {
	neg, hi, lo := form.Words()
	return assemble(neg, hi, lo)
}

// SignMagnitude returns the 17-byte sign-magnitude form as a slice.
func (f Fixed128) SignMagnitude() []byte {
	return f.Form().Bytes()
}

// FromSignMagnitude decodes the 17-byte sign-magnitude form.
func FromSignMagnitude(b []byte) (Fixed128, error) {
	form, err := codec.Decode(b)
	if err != nil {
		return Zero, err
	}
	return FromForm(form), nil
}

// String implements fmt.Stringer with the auto-precision hex form, e.g.
// "03.2492492492492494" for 22/7.
func (f Fixed128) String() string {
	return f.Form().HexAuto()
}

// HexWithPrecision renders the hex form with bytes high..8 of the integer
// part and 9..low-1 of the fraction. Valid ranges are 1 <= high <= 8 and
// 10 <= low <= 17.
func (f Fixed128) HexWithPrecision(high, low int) (string, error) {
	return f.Form().Hex(high, low)
}

// ParseHex parses the "HI.LO" / "-HI.LO" form.
func ParseHex(s string) (Fixed128, error) {
	form, err := codec.ParseHex(s)
	if err != nil {
		return Zero, err
	}
	return FromForm(form), nil
}

// Base64 returns the standard base64 of the sign-magnitude form.
func (f Fixed128) Base64() string {
	return f.Form().Base64()
}

// ParseBase64 decodes the base64 form.
func ParseBase64(s string) (Fixed128, error) {
	form, err := codec.DecodeBase64(s)
	if err != nil {
		return Zero, err
	}
	return FromForm(form), nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the sign-magnitude form.
func (f Fixed128) MarshalBinary() ([]byte, error) {
	return f.SignMagnitude(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Fixed128) UnmarshalBinary(data []byte) error {
	v, err := FromSignMagnitude(data)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler with the hex form.
func (f Fixed128) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed128) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
