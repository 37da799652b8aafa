// Package fixed128 provides Fixed128, a signed Q64.64 fixed-point number.
//
// A Fixed128 is a 128-bit two's complement integer read as raw / 2^64: the
// high 64 bits carry the integer part and the low 64 bits the fraction.
// Values are immutable and comparable; == is value equality.
//
// # Construction
//
// New and NewBig build the Q64.64 approximation of x/y with a binary long
// division over 64-bit words. The result is reproducible bit for bit by any
// implementation of the same algorithm:
//
//	half := fixed128.MustNew(1, 2)
//	fmt.Println(half) // 00.80
//
// # Arithmetic
//
// Add, Sub and Mul wrap on 128-bit overflow; nothing is detected. Mul keeps
// the full 256-bit product before rescaling. Quo divides the raw words, it
// is not fixed-point division:
//
//	a := fixed128.MustNew(3, 2)
//	b := fixed128.MustNew(5, 4)
//	a.Add(b) // 2.75
//	a.Mul(b) // 1.875
//
// MulBigInt multiplies by an integer and returns an integer, rounding the
// fractional contribution. The time façades use it to turn day fractions
// into milliseconds.
//
// # Encoding
//
// Bytes is the 16-byte two's complement form; MarshalBinary, String, Base64
// and their parsers use the sign-magnitude forms from package codec.
package fixed128
