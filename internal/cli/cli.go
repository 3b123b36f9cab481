// Package cli implements the toplangs command-line interface.
//
// This package provides the generate command, which fetches the viewer's
// repository languages from GitHub and writes the top-languages SVG card,
// and the serve command, which renders the card on demand over HTTP. The
// CLI is built using cobra with verbose logging via the charmbracelet/log
// library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "toplangs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "toplangs renders your GitHub language distribution as an SVG card",
		Long:         `toplangs summarizes the most-used programming languages across your public, non-archived GitHub repositories and renders the distribution as a self-contained SVG card suitable for embedding in a profile page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
