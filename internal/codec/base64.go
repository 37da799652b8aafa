package codec

import (
	"encoding/base64"

	"github.com/roach88/binarytime/internal/errcode"
)

// Base64 returns the standard base64 encoding of the form.
func (f Form) Base64() string {
	return base64.StdEncoding.EncodeToString(f[:])
}

// DecodeBase64 decodes standard base64 into a form. Every failure,
// including a valid encoding of the wrong length or sign byte, is reported
// as InvalidBase64.
func DecodeBase64(s string) (Form, error) {
	const op = "codec.DecodeBase64"

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Form{}, errcode.Wrap(errcode.InvalidBase64, op, "decode", err)
	}
	f, err := Decode(data)
	if err != nil {
		return Form{}, errcode.Wrap(errcode.InvalidBase64, op, "invalid value", err)
	}
	return f, nil
}
