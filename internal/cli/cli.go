// Package cli implements the aocutil command-line interface.
//
// Every library package of the module is reachable from a subcommand:
//
//   - permute, pairings: combinatorics enumerations, one result per line
//   - markup: renders colour-tagged text
//   - lines: prints a puzzle input file as an array listing
//   - gcd, lcm, ceil, quadratic, bin, hex: numeric helpers
//
// Settings come from an optional TOML file (--config) overridden by flags.
// Diagnostics go to stderr through a charmbracelet/log logger carried in
// the command context; results go to stdout.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocutil/markup"
)

var (
	version string // semantic version, e.g. "v1.2.3"
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the values reported by --version, normally injected with
// -ldflags by the main package.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI owns the output streams and the resolved settings of one invocation.
type CLI struct {
	stdout io.Writer
	stderr io.Writer

	cfg    Config
	out    *markup.Writer // results, rendered per the color setting
	status *ui            // summaries on stderr
}

// New returns a CLI writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{stdout: stdout, stderr: stderr, cfg: DefaultConfig()}
}

// Execute runs the command tree with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// RootCommand builds the aocutil command with all subcommands attached.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string
	flagCfg := DefaultConfig()

	root := &cobra.Command{
		Use:           "aocutil",
		Short:         "Puzzle-solving helpers: permutations, pairings, markup and small math",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd, configPath, flagCfg)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.SetVersionTemplate(fmt.Sprintf("aocutil %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML config file")
	pf.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&flagCfg.Color, "color", flagCfg.Color, "colour output: auto, always or never")
	pf.IntVar(&flagCfg.MaxSetSize, "max-set-size", flagCfg.MaxSetSize, "largest set an enumeration may use")

	root.AddCommand(
		c.permuteCommand(),
		c.pairingsCommand(),
		c.markupCommand(),
		c.linesCommand(),
	)
	root.AddCommand(c.numericCommands()...)

	return root
}

// setup resolves the config file and flags, then installs the logger and
// writers used by the subcommands.
func (c *CLI) setup(cmd *cobra.Command, configPath string, flagCfg Config) error {
	// 1. File first, then explicitly set flags on top
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = flagCfg.Verbose
	}
	if flags.Changed("color") {
		cfg.Color = flagCfg.Color
	}
	if flags.Changed("max-set-size") {
		cfg.MaxSetSize = flagCfg.MaxSetSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	// 2. Output writers
	mode, _ := markup.ParseColorMode(cfg.Color) // validated above
	c.out = markup.NewWriter(c.stdout, markup.WithColorMode(mode))
	c.status = newUI(c.stderr, mode != markup.ColorNever)

	// 3. Logger
	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(c.stderr, level)
	logger.Debug("config resolved", "max_set_size", cfg.MaxSetSize, "color", cfg.Color, "file", configPath)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}
