package fixed128

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/roach88/binarytime/internal/errcode"
)

// Fixed128 is a signed Q64.64 fixed-point number. The zero value is 0.
type Fixed128 struct {
	hi uint64 // raw two's complement high word, bit 63 is the sign
	lo uint64
}

var (
	// Zero is 0.0.
	Zero = Fixed128{}
	// One is 1.0.
	One = Fixed128{hi: 1}
)

// New returns the Q64.64 approximation of x/y.
// It fails with DivisionByZero if y is zero.
func New(x, y int64) (Fixed128, error) {
	if y == 0 {
		return Zero, errcode.Newf(errcode.DivisionByZero, "fixed128.New", "%d/0", x)
	}

	negX, absX := normalize(x)
	negY, absY := normalize(y)

	hi, lo := components(absX, absY)
	return assemble(negX != negY, hi, lo), nil
}

// MustNew is New that panics on a zero denominator.
func MustNew(x, y int64) Fixed128 {
	f, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return f
}

// NewBig returns the Q64.64 approximation of x/y for integers of any width.
// An integer part wider than 64 bits is truncated to its low 64 bits.
// It fails with DivisionByZero if y is zero.
func NewBig(x, y *big.Int) (Fixed128, error) {
	if y.Sign() == 0 {
		return Zero, errcode.Newf(errcode.DivisionByZero, "fixed128.NewBig", "%s/0", x)
	}

	neg := (x.Sign() < 0) != (y.Sign() < 0)
	absX := new(big.Int).Abs(x)
	absY := new(big.Int).Abs(y)

	var hi, lo uint64
	if absX.IsUint64() && absY.IsUint64() {
		hi, lo = components(absX.Uint64(), absY.Uint64())
	} else {
		hi, lo = componentsBig(absX, absY)
	}
	return assemble(neg, hi, lo), nil
}

// FromInt64 returns v as a Fixed128.
func FromInt64(v int64) Fixed128 {
	return Fixed128{hi: uint64(v)}
}

// FromRaw builds a Fixed128 from raw two's complement words.
func FromRaw(hi, lo uint64) Fixed128 {
	return Fixed128{hi: hi, lo: lo}
}

// Raw returns the raw two's complement words.
func (f Fixed128) Raw() (hi, lo uint64) {
	return f.hi, f.lo
}

// HiLo returns the integer and fractional words of the magnitude |f|.
func (f Fixed128) HiLo() (hi, lo uint64) {
	_, hi, lo = f.disassemble()
	return hi, lo
}

// Sign returns -1, 0 or +1.
func (f Fixed128) Sign() int {
	switch {
	case f.IsNeg():
		return -1
	case f.IsZero():
		return 0
	default:
		return 1
	}
}

// Cmp returns -1 if f < b, 0 if f == b and +1 if f > b.
func (f Fixed128) Cmp(b Fixed128) int {
	if f.hi != b.hi {
		if int64(f.hi) < int64(b.hi) {
			return -1
		}
		return 1
	}
	switch {
	case f.lo < b.lo:
		return -1
	case f.lo > b.lo:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f == b.
func (f Fixed128) Equal(b Fixed128) bool {
	return f == b
}

// IsNeg reports whether f < 0.
func (f Fixed128) IsNeg() bool {
	return int64(f.hi) < 0
}

// IsZero reports whether f == 0.
func (f Fixed128) IsZero() bool {
	return f.hi == 0 && f.lo == 0
}

// Neg returns -f. The most negative value is its own negation.
func (f Fixed128) Neg() Fixed128 {
	lo, carry := bits.Add64(^f.lo, 1, 0)
	hi, _ := bits.Add64(^f.hi, 0, carry)
	return Fixed128{hi: hi, lo: lo}
}

// Abs returns |f|.
func (f Fixed128) Abs() Fixed128 {
	if f.IsNeg() {
		return f.Neg()
	}
	return f
}

// BigInt returns the raw signed value (f * 2^64) as a big.Int.
func (f Fixed128) BigInt() *big.Int {
	neg, hi, lo := f.disassemble()
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	if neg {
		v.Neg(v)
	}
	return v
}

// FromBigInt builds a Fixed128 from a raw signed value, keeping its low 128
// bits in two's complement.
func FromBigInt(raw *big.Int) Fixed128 {
	m := new(big.Int).And(raw, mask128)
	var buf [16]byte
	m.FillBytes(buf[:])
	return FromRaw(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:]))
}
