package errcode

import (
	"errors"
	"fmt"
)

// Code categorizes an error.
type Code string

const (
	// DivisionByZero: zero denominator, zero raw divisor, zero scalar divisor.
	DivisionByZero Code = "DIVISION_BY_ZERO"

	// InvalidPrecision: explicit hex precision outside 1..8 / 10..17.
	InvalidPrecision Code = "INVALID_PRECISION"

	// EmptyInput: empty or whitespace-only string given to a parser.
	EmptyInput Code = "EMPTY_INPUT"

	// FormatError: text that does not match the expected grammar.
	FormatError Code = "FORMAT_ERROR"

	// InvalidBase64: base64 that does not decode to a valid 17-byte value.
	InvalidBase64 Code = "INVALID_BASE64"

	// InvalidBinary: a binary form of the wrong length or with a bad sign byte.
	InvalidBinary Code = "INVALID_BINARY"

	// InvalidInput: a float that is NaN or infinite.
	InvalidInput Code = "INVALID_INPUT"

	// Overflow: a conversion whose result does not fit the target type.
	Overflow Code = "OVERFLOW"
)

// Error is the concrete error type returned by this module.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op names the operation that failed, e.g. "fixed128.New".
	Op string

	// Message is a human-readable description.
	Message string

	// Err is an optional underlying cause.
	Err error
}

// Sentinels for errors.Is. They match any *Error with the same Code.
var (
	ErrDivisionByZero   = &Error{Code: DivisionByZero, Message: "division by zero"}
	ErrInvalidPrecision = &Error{Code: InvalidPrecision, Message: "invalid precision"}
	ErrEmptyInput       = &Error{Code: EmptyInput, Message: "empty input"}
	ErrFormat           = &Error{Code: FormatError, Message: "invalid format"}
	ErrInvalidBase64    = &Error{Code: InvalidBase64, Message: "invalid base64"}
	ErrInvalidBinary    = &Error{Code: InvalidBinary, Message: "invalid binary form"}
	ErrInvalidInput     = &Error{Code: InvalidInput, Message: "invalid input"}
	ErrOverflow         = &Error{Code: Overflow, Message: "overflow"}
)

// New creates an Error.
func New(code Code, op, message string) *Error {
	return &Error{Code: code, Op: op, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with an underlying cause.
func Wrap(code Code, op, message string, err error) *Error {
	return &Error{Code: code, Op: op, Message: message, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
