package fixed128

import (
	"math/big"
	"math/bits"

	"github.com/roach88/binarytime/internal/errcode"
)

// Add returns f + b, wrapping on overflow.
func (f Fixed128) Add(b Fixed128) Fixed128 {
	lo, carry := bits.Add64(f.lo, b.lo, 0)
	hi, _ := bits.Add64(f.hi, b.hi, carry)
	return Fixed128{hi: hi, lo: lo}
}

// Sub returns f - b, wrapping on overflow.
func (f Fixed128) Sub(b Fixed128) Fixed128 {
	lo, borrow := bits.Sub64(f.lo, b.lo, 0)
	hi, _ := bits.Sub64(f.hi, b.hi, borrow)
	return Fixed128{hi: hi, lo: lo}
}

// Mul returns f * b. The raw values are multiplied into a 256-bit signed
// product which is shifted right arithmetically by 64 bits, so results round
// toward negative infinity. Bits above 128 are discarded.
func (f Fixed128) Mul(b Fixed128) Fixed128 {
	switch {
	case f.IsZero() || b.IsZero():
		return Zero
	case f == One:
		return b
	case b == One:
		return f
	}

	p := f.magnitude().mul(b.magnitude())
	if f.IsNeg() != b.IsNeg() {
		p = p.neg()
	}
	return Fixed128{hi: p[2], lo: p[1]}
}

// Quo divides the raw 128-bit values, truncating toward zero. This is
// integer division of the representations, not fixed-point division: use
// NewBig on the underlying quantities for a fractional quotient.
// It fails with DivisionByZero if b is zero.
func (f Fixed128) Quo(b Fixed128) (Fixed128, error) {
	if b.IsZero() {
		return Zero, errcode.New(errcode.DivisionByZero, "fixed128.Quo", "raw divisor is zero")
	}

	q := f.magnitude().quo(b.magnitude())
	return assemble(f.IsNeg() != b.IsNeg(), q.hi, q.lo), nil
}

// MulBigInt returns f * y as an integer: the integer part times |y| plus the
// fraction scaled by |y| and rounded half up, with the sign applied last.
func (f Fixed128) MulBigInt(y *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int)
	}

	negX, hi, lo := f.disassemble()
	absY := new(big.Int).Abs(y)
	neg := negX != (y.Sign() < 0)

	result := new(big.Int).SetUint64(hi)
	if absY.IsUint64() && absY.Uint64() == 1 {
		if neg {
			result.Neg(result)
		}
		return result
	}

	result.Mul(result, absY)
	if absY.IsUint64() {
		result.Add(result, new(big.Int).SetUint64(hydrate(lo, absY.Uint64())))
	} else {
		result.Add(result, hydrateBig(lo, absY))
	}

	if neg {
		result.Neg(result)
	}
	return result
}

// MulInt64 is MulBigInt for int64 operands. It fails with Overflow if the
// result does not fit an int64.
func (f Fixed128) MulInt64(y int64) (int64, error) {
	r := f.MulBigInt(big.NewInt(y))
	if !r.IsInt64() {
		return 0, errcode.Newf(errcode.Overflow, "fixed128.MulInt64", "%s * %d exceeds int64", f, y)
	}
	return r.Int64(), nil
}
