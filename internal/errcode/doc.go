// Package errcode defines the error taxonomy shared by the codec, the
// fixed-point engine and the time façades.
//
// Every failure is an *Error carrying a Code. Callers branch on the code,
// either with errors.Is against one of the sentinels:
//
//	if errors.Is(err, errcode.ErrEmptyInput) { ... }
//
// or with the Is/CodeOf helpers, which see through wrapping.
package errcode
