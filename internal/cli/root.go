// contentcheck - Front-matter validation for site content collections
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/contentcheck

// Package cli provides Cobra-based CLI commands for contentcheck.
// It exposes the collection registry to operators: listing collections,
// printing their schemas, and validating a single front-matter record.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/contentcheck/internal/config"
	clierrors "github.com/ariel-frischer/contentcheck/internal/errors"
	"github.com/ariel-frischer/contentcheck/internal/logging"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contentcheck",
	Short: "Validate site content front matter",
	Long: `contentcheck validates front matter against the site's content collections.

Collections:
  blog      - Long-form articles
  posts     - Short dated posts
  projects  - Portfolio projects

Source: https://github.com/ariel-frischer/contentcheck`,
	Example: `  # List collections
  contentcheck collections

  # Show the fields of a collection
  contentcheck schema projects

  # Validate a front-matter record (YAML or JSON)
  contentcheck validate blog hello.yaml
  cat meta.json | contentcheck validate posts -`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors that do not already carry an exit
// code (cobra argument and flag errors) are printed with the failing
// command's usage line and mapped to ExitInvalidArguments.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return err
	}
	if cmd == nil {
		cmd = rootCmd
	}
	clierrors.FprintError(cmd.ErrOrStderr(), clierrors.NewArgumentErrorWithUsage(
		err.Error(),
		cmd.UseLine(),
		fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()),
	))
	return NewExitError(ExitInvalidArguments)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultLocalPath, "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}

// runtimeEnv is the configuration and logger shared by commands.
type runtimeEnv struct {
	cfg    *config.Configuration
	logger zerolog.Logger
}

// loadRuntime loads configuration, builds the logger and applies color settings.
func loadRuntime(configPath string, debug bool) (*runtimeEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger := logging.NewStderr(level)
	logger.Debug().
		Str("config", configPath).
		Bool("fail_fast", cfg.FailFast).
		Strs("date_layouts", cfg.DateLayouts).
		Msg("configuration loaded")

	applyColor(cfg.Color)
	return &runtimeEnv{cfg: cfg, logger: logger}, nil
}

// setupRuntime is loadRuntime for command handlers: configuration errors are
// printed to errOut and mapped to ExitInvalidArguments.
func setupRuntime(configPath string, debug bool, errOut io.Writer) (*runtimeEnv, error) {
	env, err := loadRuntime(configPath, debug)
	if err != nil {
		clierrors.FprintError(errOut, clierrors.InvalidConfig(err))
		return nil, NewExitError(ExitInvalidArguments)
	}
	return env, nil
}

// applyColor sets the global color mode: "always", "never" or "auto".
func applyColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !logging.IsTerminal(os.Stdout)
	}
}

// persistentFlags reads the global flags of cmd.
func persistentFlags(cmd *cobra.Command) (configPath string, debug bool) {
	configPath, _ = cmd.Flags().GetString("config")
	debug, _ = cmd.Flags().GetBool("debug")
	return configPath, debug
}
