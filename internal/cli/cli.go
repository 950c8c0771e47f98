// Package cli implements the spacegraph command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spacegraph/pkg/buildinfo"
	"github.com/matzehuels/spacegraph/pkg/graph"
	graphio "github.com/matzehuels/spacegraph/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "spacegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) applyVerbose(on bool) {
	if on {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(LogInfo)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the configuration file is loaded (see
// [Config]) and the logger is attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Spacegraph inspects small undirected graphs",
		Long:         `Spacegraph loads undirected graphs from edge-list, TOML or JSON files and reports their adjacency, degree statistics and self-loops.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flagSet := cmd.Flags().Changed("verbose")
			if flagSet {
				c.applyVerbose(c.verbose)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			// An explicit --verbose wins over the config file.
			if !flagSet && c.Config.Verbose {
				c.applyVerbose(true)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spacegraph/config.toml)")

	// Register all subcommands
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the file named by --config, or the default location when
// the flag is unset.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return nil
		}
		path = p
	}

	cfg, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph imports the graph file at path and logs how long it took.
func loadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)
	logger.Debug("loading graph", "path", path)

	prog := newProgress(logger)
	g, err := graphio.Import(path)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	prog.done(fmt.Sprintf("Loaded %d vertices, %d edges", g.VertexCount(), g.EdgeCount()))
	return g, nil
}
