package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/binarytime/internal/binarytime"
)

// DateOptions holds flags for the date command.
type DateOptions struct {
	Millis  int64
	Seconds int64
	Time    string
}

// DateResult lists the forms of a timestamp.
type DateResult struct {
	Time        string `json:"time"`
	UnixMilli   int64  `json:"unix_milli"`
	UnixSeconds int64  `json:"unix_seconds"`
	Hex         string `json:"hex"`
	HexGranular string `json:"hex_granular"`
	HexFine     string `json:"hex_fine"`
	Base64      string `json:"base64"`
	Days        string `json:"days"`
}

func (r DateResult) String() string {
	return fields{
		{"time", r.Time},
		{"unix ms", strconv.FormatInt(r.UnixMilli, 10)},
		{"unix s", strconv.FormatInt(r.UnixSeconds, 10)},
		{"hex", r.Hex},
		{"hex (granular)", r.HexGranular},
		{"hex (fine)", r.HexFine},
		{"base64", r.Base64},
		{"days", r.Days},
	}.String()
}

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DateOptions{}

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Show a timestamp in every form",
		Long: `Show a timestamp as days since the Unix epoch in every form.

Without flags the current time is used. The granular hex window is set by
date.upper and date.lower in the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Millis, "millis", 0, "Unix time in milliseconds")
	cmd.Flags().Int64Var(&opts.Seconds, "seconds", 0, "Unix time in seconds")
	cmd.Flags().StringVar(&opts.Time, "time", "", "RFC 3339 time")
	cmd.MarkFlagsMutuallyExclusive("millis", "seconds", "time")

	return cmd
}

func runDate(rootOpts *RootOptions, opts *DateOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	var ts binarytime.Timestamp
	switch {
	case cmd.Flags().Changed("millis"):
		ts = binarytime.FromUnixMilli(opts.Millis)
	case cmd.Flags().Changed("seconds"):
		ts = binarytime.FromUnixSeconds(opts.Seconds)
	case cmd.Flags().Changed("time"):
		var err error
		ts, err = binarytime.ParseTime(opts.Time)
		if err != nil {
			return formatter.Fail("parse time", err)
		}
	default:
		ts = rootOpts.clock().Now()
	}

	cfg := rootOpts.config()
	g := binarytime.Granularity{Upper: cfg.Date.Upper, Lower: cfg.Date.Lower}
	rootOpts.logger().Debug("timestamp", "unix_milli", ts.UnixMilli(), "upper", g.Upper, "lower", g.Lower)

	return formatter.Success(DateResult{
		Time:        ts.String(),
		UnixMilli:   ts.UnixMilli(),
		UnixSeconds: ts.UnixSeconds(),
		Hex:         ts.Hex(),
		HexGranular: ts.HexGranular(g),
		HexFine:     ts.HexFine(),
		Base64:      ts.Base64(),
		Days:        ts.Fixed128().DecimalStringWithPrecision(cfg.DecimalPlaces),
	})
}
