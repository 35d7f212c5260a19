package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/toolbox/foundation/core/log"
	"github.com/msto63/toolbox/foundation/utils/stringx"
)

// run executes one operation with timing and error logging, then renders
// its result to stdout.
func (a *app) run(cmd *cobra.Command, fn func() (result, error)) error {
	timer := a.logger.StartTimer(cmd.Name())
	res, err := fn()
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	if err := a.render(cmd.OutOrStdout(), res); err != nil {
		a.logger.ErrorWithErr("failed to render result", err, log.Fields{"output": a.settings.Output})
		return err
	}
	return nil
}

type sectResult struct {
	Input     string `json:"input" yaml:"input"`
	Min       *int   `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *int   `json:"max,omitempty" yaml:"max,omitempty"`
	Inclusive bool   `json:"inclusive" yaml:"inclusive"`
	Section   string `json:"section" yaml:"section"`
}

func (r sectResult) textLines() []textLine {
	return []textLine{{value: r.Section}}
}

func newSectCmd(a *app) *cobra.Command {
	var (
		minIndex, maxIndex int
		exclusive          bool
	)

	cmd := &cobra.Command{
		Use:   "sect <input>",
		Short: "Print the section of input between two indices",
		Long: `Print the section of input between --min and --max. Both bounds are
inclusive unless --exclusive is set. A missing bound defaults to the
start or end of the input. Out-of-range bounds are clamped.`,
		Example: `  toolbox sect hello --min 1 --max 3              # ell
  toolbox sect hello --min 1 --max 3 --exclusive  # l`,
		Args: exactArgs("input"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (result, error) {
				input, err := readSource(cmd, args[0])
				if err != nil {
					return nil, err
				}
				res := sectResult{Input: input, Inclusive: !exclusive}
				if cmd.Flags().Changed("min") {
					res.Min = stringx.Idx(minIndex)
				}
				if cmd.Flags().Changed("max") {
					res.Max = stringx.Idx(maxIndex)
				}
				res.Section = stringx.GetStrSect(input, res.Min, res.Max, res.Inclusive)
				return res, nil
			})
		},
	}

	cmd.Flags().IntVar(&minIndex, "min", 0, "first index of the section (default: start of input)")
	cmd.Flags().IntVar(&maxIndex, "max", 0, "last index of the section (default: end of input)")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "exclude the characters at --min and --max")
	return cmd
}

type deleteResult struct {
	Source string `json:"source" yaml:"source"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Result string `json:"result" yaml:"result"`
}

func (r deleteResult) textLines() []textLine {
	return []textLine{{value: r.Result}}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <src> <start> <end>",
		Short: "Remove the characters from start to end inclusive",
		Long: `Remove the characters from start to end, both inclusive. The source is
left unchanged when start is not smaller than end.`,
		Example: `  toolbox delete hello 1 3  # ho`,
		Args:    exactArgs("src", "start", "end"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (result, error) {
				src, err := readSource(cmd, args[0])
				if err != nil {
					return nil, err
				}
				start, err := parseIndex(cmd, "start", args[1])
				if err != nil {
					return nil, err
				}
				end, err := parseIndex(cmd, "end", args[2])
				if err != nil {
					return nil, err
				}
				return deleteResult{
					Source: src,
					Start:  start,
					End:    end,
					Result: stringx.DeleteSubStrByIndex(src, start, end),
				}, nil
			})
		},
	}
}

type trimResult struct {
	Source string `json:"source" yaml:"source"`
	Substr string `json:"substr" yaml:"substr"`
	Result string `json:"result" yaml:"result"`
}

func (r trimResult) textLines() []textLine {
	return []textLine{{value: r.Result}}
}

func newTrimCmd(a *app, use, short, example string, trim func(src, substr string) string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <src> <substr>",
		Short:   short,
		Example: example,
		Args:    exactArgs("src", "substr"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (result, error) {
				src, err := readSource(cmd, args[0])
				if err != nil {
					return nil, err
				}
				return trimResult{
					Source: src,
					Substr: args[1],
					Result: trim(src, args[1]),
				}, nil
			})
		},
	}
}

func newTrimStartCmd(a *app) *cobra.Command {
	return newTrimCmd(a, "trim-start",
		"Remove every leading repetition of substr",
		`  toolbox trim-start abababc ab  # c`,
		stringx.RemoveSubStrFromStart)
}

func newTrimEndCmd(a *app) *cobra.Command {
	return newTrimCmd(a, "trim-end",
		"Remove every trailing repetition of substr",
		`  toolbox trim-end aaabbb b  # aaa`,
		stringx.RemoveSubStrFromEnd)
}

type numericResult struct {
	Value   string `json:"value" yaml:"value"`
	Numeric bool   `json:"numeric" yaml:"numeric"`
}

func (r numericResult) textLines() []textLine {
	return []textLine{{value: strconv.FormatBool(r.Numeric)}}
}

func newIsNumericCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isnumeric <value>",
		Short: "Report whether value is an integer",
		Long: `Report whether value parses as a signed integer. The exit status is 0
for an integer and 1 otherwise.`,
		Example: `  toolbox isnumeric 42   # true
  toolbox isnumeric 4.2  # false`,
		Args: exactArgs("value"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var numeric bool
			err := a.run(cmd, func() (result, error) {
				value, err := readSource(cmd, args[0])
				if err != nil {
					return nil, err
				}
				numeric = stringx.IsNumeric(value)
				return numericResult{Value: value, Numeric: numeric}, nil
			})
			if err == nil && !numeric {
				return &exitError{code: 1}
			}
			return err
		},
	}
}

type extractResult struct {
	Source    string `json:"source" yaml:"source"`
	Head      string `json:"head" yaml:"head"`
	Tail      string `json:"tail" yaml:"tail"`
	Extracted string `json:"extracted" yaml:"extracted"`
	Remaining string `json:"remaining" yaml:"remaining"`

	deleted bool
}

func (r extractResult) textLines() []textLine {
	if !r.deleted {
		return []textLine{{value: r.Extracted}}
	}
	return []textLine{
		{label: "extracted", value: r.Extracted},
		{label: "remaining", value: r.Remaining},
	}
}

func newExtractCmd(a *app) *cobra.Command {
	var opts stringx.ExtractOptions

	cmd := &cobra.Command{
		Use:   "extract <src> <head> <tail>",
		Short: "Print the text between head and tail",
		Long: `Print the text between the first occurrence of head and the first
occurrence of tail. An empty head means the start of src, an empty tail
the end of src. With any --delete-* flag the remaining source is printed
as well.`,
		Example: `  toolbox extract 'a[b]c' '[' ']'                     # b
  toolbox extract 'a[b]c' '[' ']' --delete-extracted  # extracted: b, remaining: a[]c`,
		Args: exactArgs("src", "head", "tail"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (result, error) {
				src, err := readSource(cmd, args[0])
				if err != nil {
					return nil, err
				}
				extracted, remaining := stringx.ExtractBtwnStrings(src, args[1], args[2], opts)
				a.logger.Debug("extracted", log.Fields{
					"extracted_len": len(extracted),
					"removed":       len(src) - len(remaining),
				})
				return extractResult{
					Source:    src,
					Head:      args[1],
					Tail:      args[2],
					Extracted: extracted,
					Remaining: remaining,
					deleted:   opts != (stringx.ExtractOptions{}),
				}, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.DeleteExtracted, "delete-extracted", false, "remove the extracted text from the source")
	flags.BoolVar(&opts.DeleteBeforeHead, "delete-before-head", false, "remove everything before head")
	flags.BoolVar(&opts.DeleteHead, "delete-head", false, "remove head")
	flags.BoolVar(&opts.DeleteTail, "delete-tail", false, "remove tail")
	flags.BoolVar(&opts.DeleteAfterTail, "delete-after-tail", false, "remove everything after tail")
	return cmd
}
