package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/toolbox/foundation/core/error"
)

// textLine is one line of text output. Lines without a label print the
// bare value.
type textLine struct {
	label string
	value string
}

// result is a command result renderable as text, JSON or YAML
type result interface {
	textLines() []textLine
}

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// render writes res to w in the configured output format
func (a *app) render(w io.Writer, res result) error {
	switch a.settings.Output {
	case outputJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return mdwerror.Wrap(err, "failed to encode result as JSON").
				WithCode(mdwerror.CodeInternal).
				WithOperation("render")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return mdwerror.Wrap(err, "failed to encode result as YAML").
				WithCode(mdwerror.CodeInternal).
				WithOperation("render")
		}
		return enc.Close()

	default:
		_, err := io.WriteString(w, a.formatText(res.textLines()))
		return err
	}
}

func (a *app) formatText(lines []textLine) string {
	width := 0
	for _, line := range lines {
		if len(line.label) > width {
			width = len(line.label)
		}
	}

	var b strings.Builder
	for _, line := range lines {
		if line.label == "" {
			b.WriteString(line.value)
			b.WriteByte('\n')
			continue
		}
		label := fmt.Sprintf("%-*s", width+1, line.label+":")
		if a.settings.Color {
			label = labelStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteByte(' ')
		b.WriteString(line.value)
		b.WriteByte('\n')
	}
	return b.String()
}
