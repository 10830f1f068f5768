// Package cli implements the unitconv command-line interface.
//
// Running unitconv without a subcommand starts the interactive menu on
// stdin/stdout. The subcommands cover the same conversions without the menu:
//
//   - convert: one-shot conversion of a single value
//   - list: print the formula table (text, json, toml or yaml)
//   - pick: full-screen menu driven by the arrow keys
//   - completion: shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging on stderr and
// --no-color for plain output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jorgecontrerasostos/unitconv/internal/menu"
	"github.com/jorgecontrerasostos/unitconv/pkg/buildinfo"
	"github.com/jorgecontrerasostos/unitconv/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds the streams and logger shared by all commands.
type CLI struct {
	Logger *log.Logger

	in      io.Reader
	out     io.Writer
	noColor bool
}

// New creates a CLI reading from in, writing results to out and logging to
// errw.
func New(in io.Reader, out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		in:     in,
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetNoColor disables styled output.
func (c *CLI) SetNoColor(noColor bool) {
	c.noColor = noColor
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand the root runs the interactive menu.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "unitconv",
		Short: "unitconv converts temperatures, distances and weights",
		Long: `unitconv is an interactive unit converter. Pick a category, pick a
direction, type a number and get the converted value back.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetConversionHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.in)
	root.SetOut(c.out)

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runMenu runs the line-based menu until the user quits.
func (c *CLI) runMenu(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())
	ctrl := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger, menu.WithTheme(c.menuTheme(cmd.OutOrStdout())))
	if err := ctrl.Run(cmd.Context()); err != nil {
		return err
	}
	stats := ctrl.Stats()
	logger.Debug("menu closed", "conversions", stats.Conversions)
	return nil
}
