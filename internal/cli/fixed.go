package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/binarytime/internal/codec"
	"github.com/roach88/binarytime/internal/fixed128"
)

// FixedResult lists every form of a Fixed128 value.
type FixedResult struct {
	Hex     string  `json:"hex"`
	HexFull string  `json:"hex_full"`
	Base64  string  `json:"base64"`
	Bytes   string  `json:"bytes"` // 16-byte two's complement, hex encoded
	Decimal string  `json:"decimal"`
	Float   float64 `json:"float"`
}

func newFixedResult(v fixed128.Fixed128, places int) FixedResult {
	full, _ := v.HexWithPrecision(codec.MinHigh, codec.MaxLow)
	return FixedResult{
		Hex:     v.String(),
		HexFull: full,
		Base64:  v.Base64(),
		Bytes:   strings.ToUpper(hex.EncodeToString(v.Bytes())),
		Decimal: v.DecimalStringWithPrecision(places),
		Float:   v.Float64(),
	}
}

func (r FixedResult) fields() fields {
	return fields{
		{"hex", r.Hex},
		{"hex (full)", r.HexFull},
		{"base64", r.Base64},
		{"bytes", r.Bytes},
		{"decimal", r.Decimal},
	}
}

func (r FixedResult) String() string {
	return r.fields().String()
}

// NewFixedCommand creates the fixed command.
func NewFixedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed <x> <y>",
		Short: "Construct the Q64.64 value x/y",
		Long: `Construct the Q64.64 approximation of x/y and print its forms.

x and y are decimal integers of any width. A negative y must follow "--":

  btime fixed 22 7
  btime fixed -- 1 -3`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixed(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runFixed(opts *RootOptions, xArg, yArg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	x, err := parseInteger("x", xArg)
	if err != nil {
		return formatter.Fail("invalid argument", err)
	}
	y, err := parseInteger("y", yArg)
	if err != nil {
		return formatter.Fail("invalid argument", err)
	}

	v, err := fixed128.NewBig(x, y)
	if err != nil {
		return formatter.Fail("construct", err)
	}

	opts.logger().Debug("constructed value", "x", x, "y", y, "hex", v)
	return formatter.Success(newFixedResult(v, opts.config().DecimalPlaces))
}

func parseInteger(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}
