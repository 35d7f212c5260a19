package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/toolbox/pkg/core/version"
)

type versionResult struct {
	version.Info `yaml:",inline"`
}

func (r versionResult) textLines() []textLine {
	return []textLine{
		{value: fmt.Sprintf("toolbox v%s", r.Version)},
		{label: "  Git Commit", value: r.GitCommit},
		{label: "  Build Date", value: r.BuildDate},
		{label: "  Go Version", value: r.GoVersion},
		{label: "  OS/Arch", value: r.Platform},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (result, error) {
				return versionResult{Info: version.Get()}, nil
			})
		},
	}
}
