package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/foundation/core/log"
)

// app holds the flag values and the per-invocation state shared by all
// subcommands of one command tree.
type app struct {
	cfgFile   string
	output    string
	logLevel  string
	logFormat string
	verbose   bool

	settings *settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "toolbox",
		Short: "String helper toolbox",
		Long: `toolbox exposes a small set of string helpers on the command line.

Commands:
  sect        - section of a string between two indices
  delete      - remove an inclusive index range
  trim-start  - strip a repeated prefix
  trim-end    - strip a repeated suffix
  isnumeric   - check whether a value is an integer
  extract     - text between a head and a tail delimiter

A source argument of "-" is read from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./toolbox.toml or <user config dir>/toolbox/toolbox.toml)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: json, text, console, logfmt")

	rootCmd.AddCommand(
		newSectCmd(a),
		newDeleteCmd(a),
		newTrimStartCmd(a),
		newTrimEndCmd(a),
		newIsNumericCmd(a),
		newExtractCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the toolbox command line and reports failures on stderr
func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
// Input errors exit with 2, everything else with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return mdwerror.GetCode(err).ExitCode()
}

// exitError carries a non-zero exit status for a command that did not fail,
// such as isnumeric on a non-integer value.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func printError(cmd *cobra.Command, err error) {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
