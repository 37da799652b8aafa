// Package codec implements the byte-exact wire and text forms of a Q64.64
// value. These layouts are an interop contract: other implementations
// produce and consume the same bytes.
//
// # Forms
//
//   - Two's complement: 16 bytes, big-endian, the raw signed 128-bit value.
//   - Sign-magnitude: 17 bytes. Byte 0 is 0 (non-negative) or 1 (negative),
//     bytes 1-16 are the unsigned magnitude, big-endian.
//   - Hex: ["-"]HI.LO where HI is a suffix of bytes 1-8 and LO a prefix of
//     bytes 9-16 of the sign-magnitude form. Output is uppercase.
//   - Base64: standard padded base64 of the sign-magnitude form.
//
// Byte index 9 is the boundary between the integer and the fractional half,
// which is why the text forms are defined over the sign-magnitude form and
// not over two's complement.
package codec
