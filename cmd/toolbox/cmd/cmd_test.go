package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/pkg/core/version"
)

// writeConfig writes a config file into a temp dir and returns its path
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs a fresh command tree against an empty config file
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeWithConfig(t, writeConfig(t, "toolbox.toml", ""), stdin, args...)
}

func executeWithConfig(t *testing.T, configPath, stdin string, args ...string) (string, string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandsTextOutput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"sect inclusive", "", []string{"sect", "hello", "--min", "1", "--max", "3"}, "ell\n"},
		{"sect exclusive", "", []string{"sect", "hello", "--min", "1", "--max", "3", "--exclusive"}, "l\n"},
		{"sect whole input", "", []string{"sect", "hello"}, "hello\n"},
		{"sect clamped", "", []string{"sect", "hello", "--min", "-5", "--max", "99"}, "hello\n"},
		{"sect exclusive min at int limit", "", []string{"sect", "abc", "--min", "9223372036854775807", "--exclusive"}, "\n"},
		{"extract tail before head", "", []string{"extract", "x]a[y", "[", "]", "--delete-head", "--delete-tail"}, "extracted: \nremaining: xay\n"},
		{"sect from stdin", "hello\n", []string{"sect", "-", "--min", "0", "--max", "1"}, "he\n"},
		{"delete range", "", []string{"delete", "hello", "1", "3"}, "ho\n"},
		{"delete single index", "", []string{"delete", "hello", "3", "3"}, "hello\n"},
		{"trim-start", "", []string{"trim-start", "abababc", "ab"}, "c\n"},
		{"trim-end", "", []string{"trim-end", "aaabbb", "b"}, "aaa\n"},
		{"isnumeric integer", "", []string{"isnumeric", "--", "-42"}, "true\n"},
		{"extract", "", []string{"extract", "a[b]c", "[", "]"}, "b\n"},
		{"extract empty head", "", []string{"extract", "key=value;", "", ";"}, "key=value\n"},
		{
			"extract with deletion", "",
			[]string{"extract", "a[b]c", "[", "]", "--delete-extracted"},
			"extracted: b\nremaining: a[]c\n",
		},
		{
			"extract delimiters and outer text", "",
			[]string{"extract", "x<<v>>y", "<<", ">>", "--delete-before-head", "--delete-head", "--delete-tail", "--delete-after-tail"},
			"extracted: v\nremaining: v\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestIsNumericExitStatus(t *testing.T) {
	stdout, _, err := execute(t, "", "isnumeric", "4.2")
	require.Error(t, err)
	assert.Equal(t, "false\n", stdout)
	assert.Equal(t, 1, ExitCode(err))

	_, _, err = execute(t, "", "isnumeric", "42")
	assert.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"non-integer start", []string{"delete", "hello", "x", "3"}, mdwerror.CodeInvalidInput},
		{"non-integer end", []string{"delete", "hello", "1", "3.5"}, mdwerror.CodeInvalidInput},
		{"missing end", []string{"delete", "hello", "1"}, mdwerror.CodeMissingArgument},
		{"too many args", []string{"isnumeric", "1", "2"}, mdwerror.CodeInvalidInput},
		{"unknown output format", []string{"-o", "xml", "sect", "hello"}, mdwerror.CodeInvalidInput},
		{"unknown log level flag", []string{"--log-level", "loud", "sect", "hello"}, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.True(t, mdwerror.HasCode(err, tt.code), "error %v lacks code %s", err, tt.code)
			assert.Equal(t, 2, ExitCode(err))
		})
	}
}

func TestInvalidInputIsLogged(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "delete", "hello", "x", "3")
	require.Error(t, err)
	assert.Contains(t, stderr, "error_code=INVALID_INPUT")
	assert.Contains(t, stderr, "error_argument=start")
	assert.Contains(t, stderr, "delete failed")
	assert.Contains(t, stderr, "success=false")
}

func TestStructuredOutput(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "", "-o", "json", "delete", "hello", "1", "3")
		require.NoError(t, err)

		var got deleteResult
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, deleteResult{Source: "hello", Start: 1, End: 3, Result: "ho"}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := execute(t, "", "-o", "yaml", "extract", "a[b]c", "[", "]", "--delete-extracted")
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "b", got["extracted"])
		assert.Equal(t, "a[]c", got["remaining"])
	})

	t.Run("sect bounds omitted when unset", func(t *testing.T) {
		stdout, _, err := execute(t, "", "-o", "json", "sect", "hello", "--max", "1")
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.NotContains(t, got, "min")
		assert.Equal(t, float64(1), got["max"])
		assert.Equal(t, "he", got["section"])
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, err := execute(t, "", "-o", "json", "version")
		require.NoError(t, err)

		var got version.Info
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, version.Version, got.Version)
	})
}

func TestVersionText(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "toolbox v"+version.Version+"\n"))
	assert.Contains(t, stdout, "Git Commit:")
}

func TestSettingsFromConfigFile(t *testing.T) {
	t.Run("yaml config selects output format", func(t *testing.T) {
		path := writeConfig(t, "toolbox.yaml", "output:\n  format: json\n")
		stdout, _, err := executeWithConfig(t, path, "", "trim-end", "aaabbb", "b")
		require.NoError(t, err)
		assert.JSONEq(t, `{"source":"aaabbb","substr":"b","result":"aaa"}`, stdout)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		path := writeConfig(t, "toolbox.toml", "[output]\nformat = \"json\"\n")
		stdout, _, err := executeWithConfig(t, path, "", "-o", "text", "trim-end", "aaabbb", "b")
		require.NoError(t, err)
		assert.Equal(t, "aaa\n", stdout)
	})

	t.Run("environment overrides config", func(t *testing.T) {
		t.Setenv("TOOLBOX_OUTPUT_FORMAT", "yaml")
		path := writeConfig(t, "toolbox.toml", "[output]\nformat = \"json\"\n")
		stdout, _, err := executeWithConfig(t, path, "", "isnumeric", "7")
		require.NoError(t, err)
		assert.Equal(t, "value: \"7\"\nnumeric: true\n", stdout)
	})

	t.Run("invalid log level in config", func(t *testing.T) {
		path := writeConfig(t, "toolbox.toml", "[log]\nlevel = \"loud\"\n")
		_, _, err := executeWithConfig(t, path, "", "sect", "hello")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
		assert.Equal(t, 1, ExitCode(err))
	})

	t.Run("missing config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.toml")
		_, _, err := executeWithConfig(t, path, "", "sect", "hello")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
	})
}

func TestDiscoveredConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toolbox.toml"), []byte("[output]\nformat = \"json\"\n"), 0o644))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	rootCmd := newRootCmd()
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"trim-start", "aab", "a"})
	require.NoError(t, rootCmd.Execute())
	assert.JSONEq(t, `{"source":"aab","substr":"a","result":"b"}`, stdout.String())
}

func TestLoggerCorrelationID(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "--log-format", "json", "delete", "hello", "1", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	var ids []string
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "delete", entry["command"])
		id, _ := entry["correlation_id"].(string)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
		ids = append(ids, id)
	}
	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
	assert.Contains(t, stderr, "delete completed")
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "", "delete", "hello", "x", "3")
	require.Error(t, err)
	assert.Empty(t, stderr)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"exit error", &exitError{code: 3}, 3},
		{"input error", mdwerror.New("x").WithCode(mdwerror.CodeInvalidInput), 2},
		{"wrapped input error", fmt.Errorf("ctx: %w", mdwerror.New("x").WithCode(mdwerror.CodeMissingArgument)), 2},
		{"config error", mdwerror.New("x").WithCode(mdwerror.CodeConfigError), 1},
		{"plain error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
