package cmd

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/toolbox/foundation/core/config"
	mdwerror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/foundation/core/log"
)

const envPrefix = "TOOLBOX"

// Output formats for command results
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// settings is the effective configuration of one invocation: config file
// values overridden by environment variables, overridden by flags.
type settings struct {
	LogLevel   log.Level
	LogFormat  log.Format
	Output     string
	Color      bool
	ConfigPath string
}

func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"output": map[string]interface{}{
			"format": outputText,
			"color":  false,
		},
	}
}

// loadConfig reads the explicit config file, or the first one found in the
// default locations. Missing default files are not an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults(),
		})
	}

	options := config.DefaultDiscoveryOptions()
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults()
	return config.Discover(options)
}

func (a *app) resolveSettings(cfg *config.Config) (*settings, error) {
	s := &settings{
		Color:      cfg.GetBool("output.color"),
		ConfigPath: cfg.FilePath(),
	}

	var err error
	level := pick(a.logLevel, cfg.GetString("log.level"), "log.level", "--log-level")
	if s.LogLevel, err = log.ParseLevel(level.value); err != nil {
		return nil, level.invalid(err)
	}
	if a.verbose {
		s.LogLevel = log.LevelDebug
	}

	format := pick(a.logFormat, cfg.GetString("log.format"), "log.format", "--log-format")
	if s.LogFormat, err = log.ParseFormat(format.value); err != nil {
		return nil, format.invalid(err)
	}

	output := pick(a.output, cfg.GetString("output.format"), "output.format", "--output")
	s.Output = strings.ToLower(strings.TrimSpace(output.value))
	switch s.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, output.invalid(mdwerror.Newf("unsupported output format %q", output.value))
	}

	return s, nil
}

// setting is a resolved value together with where it came from
type setting struct {
	value    string
	key      string
	fromFlag bool
}

func pick(flagValue, configValue, key, flag string) setting {
	if flagValue != "" {
		return setting{value: flagValue, key: flag, fromFlag: true}
	}
	return setting{value: configValue, key: key}
}

// invalid reports a bad flag as invalid input and a bad file or
// environment value as invalid configuration.
func (s setting) invalid(cause error) error {
	code := mdwerror.CodeInvalidConfig
	if s.fromFlag {
		code = mdwerror.CodeInvalidInput
	}
	return mdwerror.Wrap(cause, "invalid value for "+s.key).
		WithCode(code).
		WithOperation("settings").
		WithDetail("key", s.key).
		WithDetail("value", s.value)
}

// setup loads the configuration and builds the logger before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	s, err := a.resolveSettings(cfg)
	if err != nil {
		return err
	}
	a.settings = s

	logger := log.NewWithConfig(log.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "toolbox",
	})
	if s.LogFormat == log.FormatConsole && !s.Color {
		console := log.NewConsoleFormatter()
		console.DisableColors = true
		logger = logger.WithFormatter(console)
	}
	a.logger = logger.
		WithCorrelationID(uuid.NewString()).
		WithField("command", cmd.Name())

	a.logger.Debug("configuration loaded", log.Fields{
		"config_path": s.ConfigPath,
		"output":      s.Output,
		"log_level":   s.LogLevel.String(),
	})
	return nil
}
