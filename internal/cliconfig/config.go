// Package cliconfig provides shared configuration and exit-code handling
// for the weave CLI, loaded from flags, environment, and an optional
// weave.yaml via Viper.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Exit codes.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitConfig     = 2
	ExitAssembly   = 3
	ExitBadRequest = 4
)

// Config is the weave CLI's configuration, loaded from weave.yaml with
// flag and environment overrides layered on top by the caller.
type Config struct {
	// Assembly is the path to the assembly file (YAML or JSON) describing
	// families and rules.
	Assembly string `mapstructure:"assembly"`
	// Output controls result rendering: "text" or "json".
	Output string `mapstructure:"output"`
	// TUI holds interactive-mode settings.
	TUI TUIConfig `mapstructure:"tui"`
}

// TUIConfig holds interactive configurator settings.
type TUIConfig struct {
	// Watch re-loads the assembly file when it changes on disk.
	Watch bool `mapstructure:"watch"`
}

// LoadConfig loads configuration with precedence flags > env > config
// file > defaults. explicitConfigPath, if non-empty, names the config
// file directly; otherwise Viper searches its own candidate paths (the
// working directory, an adjacent "config" directory, and the user's
// config directory) for "weave.{yaml,yml}", the same multi-path search
// Viper itself is built around rather than a hand-rolled directory walk.
// It is not an error for no config file to be found anywhere searched —
// defaults and environment variables still apply.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WEAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitConfigPath != "" {
		v.SetConfigFile(explicitConfigPath)
	} else {
		v.SetConfigName("weave")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "weave"))
		}
	}

	var configPath string
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitConfigPath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config file: %w", err)
		}
	} else {
		configPath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("assembly", "")
	v.SetDefault("output", "text")
	v.SetDefault("tui.watch", false)
}

// ExitError wraps an error with the process exit code it should produce.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitWithError prints err and exits with its ExitError code, or
// ExitGeneral if err is not an *ExitError.
func ExitWithError(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", exitErr.Error())
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(ExitGeneral)
}

// ConfigErr wraps err as an *ExitError with ExitConfig.
func ConfigErr(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// AssemblyErr wraps err as an *ExitError with ExitAssembly.
func AssemblyErr(msg string, err error) *ExitError {
	return &ExitError{Code: ExitAssembly, Message: msg, Err: err}
}

// BadRequestErr wraps err as an *ExitError with ExitBadRequest.
func BadRequestErr(msg string, err error) *ExitError {
	return &ExitError{Code: ExitBadRequest, Message: msg, Err: err}
}
