package fixed128

import "math/bits"

// uint128 is an unsigned 128-bit magnitude used by Mul and Quo.
type uint128 struct {
	hi, lo uint64
}

func (f Fixed128) magnitude() uint128 {
	_, hi, lo := f.disassemble()
	return uint128{hi: hi, lo: lo}
}

func (u uint128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

func (u uint128) add64(n uint64) uint128 {
	lo, carry := bits.Add64(u.lo, n, 0)
	return uint128{hi: u.hi + carry, lo: lo}
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

// mul64 returns the low 128 bits of u*n.
func (u uint128) mul64(n uint64) uint128 {
	hi, lo := bits.Mul64(u.lo, n)
	return uint128{hi: hi + u.hi*n, lo: lo}
}

func (u uint128) lsh(n uint) uint128 {
	if n == 0 {
		return u
	}
	return uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u uint128) rsh1() uint128 {
	return uint128{hi: u.hi >> 1, lo: u.lo>>1 | u.hi<<63}
}

// quo returns u / v truncated. v must be non-zero.
func (u uint128) quo(v uint128) uint128 {
	if v.hi == 0 {
		if u.hi < v.lo {
			q, _ := bits.Div64(u.hi, u.lo, v.lo)
			return uint128{lo: q}
		}
		qhi, r := u.hi/v.lo, u.hi%v.lo
		qlo, _ := bits.Div64(r, u.lo, v.lo)
		return uint128{hi: qhi, lo: qlo}
	}

	// Estimate the quotient from the normalized top word, which is off by
	// at most one after the decrement, then correct.
	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.lsh(n)
	u1 := u.rsh1()
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}

	q := uint128{lo: tq}
	if u.sub(v.mul64(tq)).cmp(v) >= 0 {
		q = q.add64(1)
	}
	return q
}

// product is a 256-bit value as four words, least significant first.
type product [4]uint64

// mul returns the full 256-bit product u*v.
func (u uint128) mul(v uint128) product {
	h00, l00 := bits.Mul64(u.lo, v.lo)
	h01, l01 := bits.Mul64(u.lo, v.hi)
	h10, l10 := bits.Mul64(u.hi, v.lo)
	h11, l11 := bits.Mul64(u.hi, v.hi)

	w1, c1 := bits.Add64(h00, l01, 0)
	w1, c2 := bits.Add64(w1, l10, 0)
	w2, c3 := bits.Add64(h01, h10, c1)
	w2, c4 := bits.Add64(w2, l11, c2)
	w3 := h11 + c3 + c4

	return product{l00, w1, w2, w3}
}

// neg returns the two's complement negation of p.
func (p product) neg() product {
	var out product
	carry := uint64(1)
	for i, w := range p {
		out[i], carry = bits.Add64(^w, 0, carry)
	}
	return out
}
