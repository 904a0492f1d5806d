// SPDX-License-Identifier: MIT

// Package cli implements the seqalign command-line interface.
//
// The CLI is a thin shell over the align, dtw and dnagen packages:
//   - align: pairwise alignment of two strings under a scoring profile
//   - dtw: dynamic time warping distance between two numeric series
//   - generate: synthetic DNA sequences, optionally with a mutated copy
//
// # Profiles
//
// Scoring parameters come from named profiles. The built-ins are "global"
// (Needleman-Wunsch), "local" (Smith-Waterman) and "levenshtein". A TOML file
// passed with --config may add profiles or override the built-ins, and
// individual flags override the selected profile.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI logger
// is passed through context.Context; with --verbose the alignment engine's
// own zap events are written to stderr as well.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// appName is the application name used in help and version output.
const appName = "seqalign"

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	errOut     io.Writer
	engine     *zap.Logger
	configPath string
	profile    string
}

// New creates a CLI whose log output goes to errOut at the given level.
func New(errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		errOut: errOut,
		engine: zap.NewNop(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose switches both the CLI logger and the engine logger between
// info and debug output.
func (c *CLI) SetVerbose(verbose bool) {
	level := LogInfo
	if verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.engine = newEngineLogger(c.errOut, verbose)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Pairwise sequence alignment and dynamic time warping",
		Long:         `seqalign aligns two sequences with Needleman-Wunsch, Smith-Waterman or Levenshtein scoring, measures dynamic time warping distance between numeric series, and generates synthetic DNA for experiments.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetVerbose(verbose)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with additional scoring profiles")
	root.PersistentFlags().StringVarP(&c.profile, "profile", "p", defaultProfile, "scoring profile name")

	root.AddCommand(c.alignCommand())
	root.AddCommand(c.dtwCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// resolveProfile loads the configured profiles and returns the selected one.
func (c *CLI) resolveProfile(logger *log.Logger) (Profile, error) {
	profiles, err := loadProfiles(c.configPath, logger)
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles[c.profile]
	if !ok {
		return Profile{}, fmt.Errorf("%q: %w", c.profile, ErrUnknownProfile)
	}
	logger.Debug("using profile", "name", c.profile, "strategy", p.Strategy)

	return p, nil
}

// Execute runs the seqalign CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
