package fixed128

import (
	"database/sql/driver"

	"github.com/roach88/binarytime/internal/errcode"
)

// Value implements driver.Valuer. Values are stored as the 17-byte
// sign-magnitude BLOB.
func (f Fixed128) Value() (driver.Value, error) {
	return f.SignMagnitude(), nil
}

// Scan implements sql.Scanner. It accepts the 17-byte BLOB, a hex string,
// or NULL (scanned as zero).
func (f *Fixed128) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = Zero
		return nil
	case []byte:
		return f.UnmarshalBinary(v)
	case string:
		return f.UnmarshalText([]byte(v))
	default:
		return errcode.Newf(errcode.InvalidBinary, "fixed128.Scan", "unsupported source type %T", src)
	}
}
