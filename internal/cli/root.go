package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/binarytime/internal/binarytime"
	"github.com/roach88/binarytime/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Set by the root command before any subcommand runs.
	Config *config.Config
	Logger *slog.Logger

	// Clock supplies "now" for the date command. Nil means the wall clock.
	Clock binarytime.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = config.Formats

// NewRootCommand creates the root command for the btime CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "btime",
		Short: "btime - binary time values",
		Long: `Inspect Q64.64 fixed-point values and the timestamps and durations built on them.

Timestamps count days since the Unix epoch; the integer part of the hex form is
the day number and the fraction is the position within the day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewFixedCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewDurationCommand(opts))

	return cmd
}

// setup loads the config file, applies flag overrides and installs the
// logger. Flags given on the command line win over the file.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.LoadAndValidate(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("format") || o.ConfigPath == "" {
		cfg.Format = o.Format
	} else {
		o.Format = cfg.Format
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	o.Config = cfg

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.Logger.Debug("configuration loaded",
		"path", o.ConfigPath,
		"format", cfg.Format,
		"upper", cfg.Date.Upper,
		"lower", cfg.Date.Lower,
		"decimal_places", cfg.DecimalPlaces)
	return nil
}

// config returns the loaded configuration, or the defaults when a
// subcommand runs without the root command.
func (o *RootOptions) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) clock() binarytime.Clock {
	if o.Clock == nil {
		return binarytime.SystemClock{}
	}
	return o.Clock
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
