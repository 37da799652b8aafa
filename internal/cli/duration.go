package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/binarytime/internal/binarytime"
)

// DurationResult lists the forms of a duration.
type DurationResult struct {
	Duration string `json:"duration"`
	Millis   int64  `json:"millis"`
	Hex      string `json:"hex"`
	Base64   string `json:"base64"`
	Days     string `json:"days"`
}

func (r DurationResult) String() string {
	return fields{
		{"duration", r.Duration},
		{"millis", strconv.FormatInt(r.Millis, 10)},
		{"hex", r.Hex},
		{"base64", r.Base64},
		{"days", r.Days},
	}.String()
}

// NewDurationCommand creates the duration command.
func NewDurationCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <expr>",
		Short: "Parse a duration such as 2h30m45s",
		Long: `Parse a duration and show it in every form.

An expression is an optional "-" followed by <number><unit> pairs, with units
ms, s, m, h and d. Numbers may be decimal: 1.5h30m is two hours. A leading "-"
must follow "--":

  btime duration 2h30m45s
  btime duration -- -1.5s`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuration(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDuration(opts *RootOptions, expr string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	d, err := binarytime.Parse(expr)
	if err != nil {
		return formatter.Fail("parse duration", err)
	}
	opts.logger().Debug("parsed duration", "input", expr, "millis", d.Millis())

	return formatter.Success(DurationResult{
		Duration: d.String(),
		Millis:   d.Millis(),
		Hex:      d.Hex(),
		Base64:   d.Base64(),
		Days:     d.Fixed128().DecimalStringWithPrecision(opts.config().DecimalPlaces),
	})
}
