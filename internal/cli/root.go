// Package cli implements the dateconv command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viant/dateconv"
	"github.com/viant/dateconv/pattern"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	zone       string
	locale     string
	dialect    string
	verbose    bool
}

var flags rootFlags

// exitError carries the process exit code of a failed command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func systemError(err error) error { return &exitError{code: exitSysError, err: err} }

// NewRootCmd creates the top-level "dateconv" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dateconv",
		Short: "Convert dates between representations",
		Long:  "dateconv parses date text and converts it between calendar, instant, zoned,\noffset and local date/time representations.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./dateconv.yaml)")
	root.PersistentFlags().StringVar(&flags.zone, "zone", "", "default IANA zone (default: process zone)")
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "default locale (default: LC_ALL, LC_TIME or LANG)")
	root.PersistentFlags().StringVar(&flags.dialect, "dialect", "", "pattern dialect: auto, cldr, strftime, iso, go")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug diagnostics")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newKindsCmd())
	root.AddCommand(newDetectCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitUserError
}

// newConverter creates a converter configured by flags, env and config file
func newConverter(cmd *cobra.Command) (*dateconv.Converter, error) {
	cfg, err := loadConfig(cmd, flags.configFile)
	if err != nil {
		return nil, systemError(err)
	}
	zone, err := dateconv.NewZoneContext(dateconv.ZoneOptions{
		Zone:   cfg.GetString(cfgKeyZone),
		Locale: localeOf(cfg),
	})
	if err != nil {
		return nil, userError(err)
	}
	dialect, err := pattern.NewDialect(cfg.GetString(cfgKeyDialect))
	if err != nil {
		return nil, userError(err)
	}
	return dateconv.New(
		dateconv.WithZoneContext(zone),
		dateconv.WithDialect(dialect),
		dateconv.WithLogger(newLogger(cmd.ErrOrStderr(), flags.verbose)),
	), nil
}

func localeOf(cfg *viper.Viper) string {
	if locale := cfg.GetString(cfgKeyLocale); locale != "" {
		return locale
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
