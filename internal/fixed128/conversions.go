package fixed128

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/roach88/binarytime/internal/errcode"
)

// 2^-64 == 5^64 / 10^64, so raw * 5^64 with exponent -64 is exact.
var pow5of64 = new(big.Int).Exp(big.NewInt(5), big.NewInt(64), nil)

const defaultDecimalPlaces = 15

// Decimal returns the exact decimal value of f.
func (f Fixed128) Decimal() decimal.Decimal {
	coef := new(big.Int).Mul(f.BigInt(), pow5of64)
	return decimal.NewFromBigInt(coef, -64)
}

// FromDecimal returns the Q64.64 approximation of d.
func FromDecimal(d decimal.Decimal) Fixed128 {
	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(1)

	exp := d.Exponent()
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(exp))), nil)
	if exp >= 0 {
		num.Mul(num, scale)
	} else {
		den = scale
	}

	f, err := NewBig(num, den)
	if err != nil {
		// den is a power of ten
		panic(err)
	}
	return f
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// DecimalString returns f in decimal with 15 places.
func (f Fixed128) DecimalString() string {
	return f.DecimalStringWithPrecision(defaultDecimalPlaces)
}

// DecimalStringWithPrecision returns f in decimal rounded half away from zero
// to the given number of places.
func (f Fixed128) DecimalStringWithPrecision(places int) string {
	return f.Decimal().StringFixed(int32(places))
}

// Float64 returns the float64 nearest to f.
func (f Fixed128) Float64() float64 {
	v, _ := f.Decimal().Float64()
	return v
}

// FromFloat64 returns the Q64.64 approximation of the shortest decimal that
// round-trips to x. It fails with InvalidInput for NaN and infinities.
func FromFloat64(x float64) (Fixed128, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Zero, errcode.Newf(errcode.InvalidInput, "fixed128.FromFloat64", "%v is not finite", x)
	}
	return FromDecimal(decimal.NewFromFloat(x)), nil
}

// Int64 returns f rounded half up on its magnitude. It fails with Overflow
// outside the int64 range.
func (f Fixed128) Int64() (int64, error) {
	neg, hi, lo := f.disassemble()

	r := hi
	if lo >= 1<<63 {
		if hi == math.MaxUint64 {
			return 0, errcode.Newf(errcode.Overflow, "fixed128.Int64", "%s exceeds int64", f)
		}
		r++
	}

	switch {
	case !neg && r > math.MaxInt64:
		return 0, errcode.Newf(errcode.Overflow, "fixed128.Int64", "%s exceeds int64", f)
	case neg && r > 1<<63:
		return 0, errcode.Newf(errcode.Overflow, "fixed128.Int64", "%s exceeds int64", f)
	case neg:
		return -int64(r), nil
	default:
		return int64(r), nil
	}
}
