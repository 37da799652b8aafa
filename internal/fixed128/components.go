package fixed128

import (
	"math/big"
	"math/bits"
)

var (
	mask64  = new(big.Int).SetUint64(^uint64(0))
	mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// normalize splits v into its sign and magnitude.
func normalize(v int64) (bool, uint64) {
	mask := uint64(v >> 63)
	return mask != 0, (uint64(v) ^ mask) - mask
}

// components returns the integer and fractional words of x/y.
//
// The remainder and divisor are shifted left until the divisor's top bit is
// set, then the divisor is halved on each step and the quotient bit is
// emitted MSB first. The loop stops when the remainder is exhausted, the
// divisor reaches 1, or 64 bits have been produced.
func components(x, y uint64) (hi, lo uint64) {
	hi = x / y
	part := x % y

	shift := bits.LeadingZeros64(y)
	y <<= shift
	part <<= shift

	var i int
	for ; i < 64 && y > 1 && part > 0; i++ {
		y >>= 1
		bit := part / y
		part -= bit * y
		lo = lo<<1 | bit
	}
	lo <<= 64 - i

	return hi, lo
}

// componentsBig is components for operands wider than 64 bits. The shift is
// the leading-zero count of the divisor's low word.
func componentsBig(x, y *big.Int) (hi, lo uint64) {
	q, part := new(big.Int).QuoRem(x, y, new(big.Int))
	hi = low64(q)

	shift := uint(bits.LeadingZeros64(low64(y)))
	d := new(big.Int).Lsh(y, shift)
	part.Lsh(part, shift)

	one := big.NewInt(1)
	bit := new(big.Int)
	var i int
	for ; i < 64 && d.Cmp(one) > 0 && part.Sign() > 0; i++ {
		d.Rsh(d, 1)
		bit.Quo(part, d)
		part.Sub(part, new(big.Int).Mul(bit, d))
		lo = lo<<1 | bit.Uint64()
	}
	lo <<= 64 - i

	return hi, lo
}

// hydrate scales the fractional word lo by div and rounds half up on the
// first dropped bit.
func hydrate(lo, div uint64) uint64 {
	shift := bits.LeadingZeros64(div)
	div <<= shift

	var part uint64
	for i := 0; i < 64 && div > 0; i++ {
		div >>= 1
		bit := lo >> (63 - i) & 1
		part += div * bit
	}

	return round(shift, part)
}

func round(shift int, part uint64) uint64 {
	if shift == 0 {
		return part
	}

	part >>= shift - 1
	bit := part & 1
	part >>= 1
	return part + bit
}

// hydrateBig is hydrate for multipliers wider than 64 bits.
func hydrateBig(lo uint64, div *big.Int) *big.Int {
	shift := uint(bits.LeadingZeros64(low64(div)))
	d := new(big.Int).Lsh(div, shift)

	part := new(big.Int)
	for i := 0; i < 64 && d.Sign() > 0; i++ {
		d.Rsh(d, 1)
		if lo>>(63-i)&1 == 1 {
			part.Add(part, d)
		}
	}

	if shift == 0 {
		return part
	}
	part.Rsh(part, shift-1)
	bit := part.Bit(0)
	part.Rsh(part, 1)
	return part.Add(part, new(big.Int).SetUint64(uint64(bit)))
}

// assemble builds a value from a sign and magnitude words.
func assemble(neg bool, hi, lo uint64) Fixed128 {
	f := Fixed128{hi: hi, lo: lo}
	if neg {
		return f.Neg()
	}
	return f
}

// disassemble returns the sign and the magnitude words of f.
func (f Fixed128) disassemble() (neg bool, hi, lo uint64) {
	neg = f.IsNeg()
	if neg {
		f = f.Neg()
	}
	return neg, f.hi, f.lo
}

func low64(v *big.Int) uint64 {
	return new(big.Int).And(v, mask64).Uint64()
}
