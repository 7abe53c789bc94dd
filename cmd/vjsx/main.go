package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vjsx/internal/config"
	"github.com/vango-dev/vjsx/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli holds state shared by all commands once the root pre-run has loaded
// the configuration.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err to w. Errors from flag and argument parsing are not
// coded, so they are reported as invalid usage.
func reportError(w io.Writer, err error) {
	errors.PrintError(w, errors.FromError(err, "E142"))
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "vjsx",
		Short: "Inspect how JSX-style attributes become render nodes",
		Long: `vjsx builds render nodes from element descriptors.

Attribute keys are routed into node-data buckets (attrs, props,
domProps, on, nativeOn, directives and so on) exactly as the
runtime builder does. Use it to check:

  • which bucket a key lands in
  • what a YAML or JSON element description builds to
  • how model bindings and directives are expanded`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file (default: vjsx.yaml, vjsx.yml or vjsx.json in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		inspectCmd(c),
		classifyCmd(c),
		versionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and installs the logger.
func (c *cli) setup(logOut io.Writer) error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	level := c.cfg.LogLevel()
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(c.logger)

	if path := c.cfg.Path(); path != "" {
		c.logger.Debug("loaded config", "path", path)
	}
	return nil
}
