package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/toolbox/foundation/core/error"
)

// stdinArg as a source argument reads the source from stdin
const stdinArg = "-"

// exactArgs requires one positional argument per name. Missing arguments
// are reported by name.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			missing := names[len(args):]
			return mdwerror.Newf("missing argument(s): %s", strings.Join(missing, ", ")).
				WithCode(mdwerror.CodeMissingArgument).
				WithOperation(cmd.Name()).
				WithDetail("missing", missing)
		}
		if len(args) > len(names) {
			return mdwerror.Newf("accepts %d arg(s), received %d", len(names), len(args)).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation(cmd.Name())
		}
		return nil
	}
}

// readSource returns arg, or the content of stdin without its final line
// break when arg is "-".
func readSource(cmd *cobra.Command, arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read source from stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(cmd.Name())
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// parseIndex converts an index argument to an int
func parseIndex(cmd *cobra.Command, name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, mdwerror.Newf("argument %s: %q is not an integer", name, value).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(cmd.Name()).
			WithDetail("argument", name).
			WithDetail("value", value)
	}
	return n, nil
}
