package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/w3cdtf/w3cdtf/internal/checker"
	"github.com/w3cdtf/w3cdtf/internal/report"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color     = colorAuto
	fileGlobs []string
	jobs      int
	quiet     bool

	errInvalidInput = errors.New("one or more inputs failed to parse")
)

var rootCmd = &cobra.Command{
	Use:   "w3cdtf [<datetime>...]",
	Short: "Validate and canonicalize W3C datetime strings",
	Long: `w3cdtf parses datetime strings in the W3C profile of ISO 8601
(https://www.w3.org/TR/NOTE-datetime) and prints them in canonical form.

Accepted forms:
  YYYY-MM-DD                 complete date (midnight UTC)
  YYYY-MM-DDThh:mmTZD        date plus hours and minutes
  YYYY-MM-DDThh:mm:ssTZD     date plus seconds
  YYYY-MM-DDThh:mm:ss.sTZD   date plus fractional seconds

TZD is the zone designator: "Z" or a ±hh:mm offset. Inputs that fail to
parse are reported with the offending token underlined.

Datetimes are read from command-line arguments, or line by line from
files selected with --files glob patterns ("**" matches across
directories).

Examples:
  w3cdtf 2015-01-20T17:35:20-08:00
  w3cdtf 2015-03-04 1944-06-06T04:04:00Z
  w3cdtf -f "logs/**/*.stamps"
  w3cdtf -q -f "stamps/*.list" && echo all valid`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if len(args) == 0 && len(fileGlobs) == 0 {
			return fmt.Errorf("at least one datetime argument or --files pattern is required")
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().StringSliceVarP(&fileGlobs, "files", "f", []string{},
		"check files matching a glob pattern (can be specified multiple times)")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrently checked files")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress per-input output, report via exit status only")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	output := report.New(os.Stdout, os.Stderr, colorize, quiet)
	invalid, err := checker.New(output).Check(ctx, &checker.Options{
		Inputs: args,
		Globs:  fileGlobs,
		Jobs:   jobs,
	})
	if err != nil {
		return err
	}
	if invalid > 0 {
		output.Summaryf("%d invalid datetime(s)", invalid)
		return errInvalidInput
	}
	return nil
}
