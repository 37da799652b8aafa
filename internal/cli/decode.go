package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/binarytime/internal/binarytime"
	"github.com/roach88/binarytime/internal/fixed128"
)

// DecodeResult is a decoded value read three ways.
type DecodeResult struct {
	Input     string      `json:"input"` // "hex" or "base64"
	Value     FixedResult `json:"value"`
	Timestamp string      `json:"timestamp"`
	Duration  string      `json:"duration"`
}

func (r DecodeResult) String() string {
	fs := fields{{"input", r.Input}}
	fs = append(fs, r.Value.fields()...)
	fs = append(fs, fields{
		{"timestamp", r.Timestamp},
		{"duration", r.Duration},
	}...)
	return fs.String()
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <text>",
		Short: "Decode a hex (HI.LO) or base64 value",
		Long: `Decode a value in hex "HI.LO" form or base64 of the 17-byte form and print
its forms, along with its reading as a timestamp and as a duration.

Input containing a "." is read as hex, anything else as base64.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDecode(opts *RootOptions, text string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	input := "base64"
	parse := fixed128.ParseBase64
	if strings.Contains(text, ".") {
		input = "hex"
		parse = fixed128.ParseHex
	}

	v, err := parse(strings.TrimSpace(text))
	if err != nil {
		return formatter.Fail("decode "+input, err)
	}
	opts.logger().Debug("decoded value", "input", input, "hex", v)

	return formatter.Success(DecodeResult{
		Input:     input,
		Value:     newFixedResult(v, opts.config().DecimalPlaces),
		Timestamp: binarytime.FromFixed128(v).String(),
		Duration:  binarytime.DurationFromFixed128(v).String(),
	})
}
