// SPDX-License-Identifier: MIT

// Package cli implements the assignbench command-line interface.
//
// # Commands
//
//   - solve: read a cost matrix from a JSON, YAML or TOML file and solve it
//   - bench: run a generated sweep and print per-size summaries
//   - version: print build information
//
// # Configuration
//
// Every flag can also be set in a config file (--config, any format viper
// reads) or through an ASSIGNBENCH_* environment variable; dashes in flag
// names become underscores. Flags win over the environment, which wins over
// the file.
//
// # Logging
//
// Logs go to stderr through zap, exposed to the rest of the program as a
// logr.Logger carried in the command context. -v enables solver progress
// lines, -vv adds per-step detail. --log-format json switches to structured
// output.
package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// appName is the binary name used in help and version output.
	appName = "assignbench"

	// envPrefix is the environment variable prefix read by viper.
	envPrefix = "ASSIGNBENCH"
)

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper

	verbose   int
	logFormat string
	cfgFile   string

	zl     *zap.Logger
	Logger logr.Logger
}

// New creates a CLI that prints results to out and logs to errOut. The
// logger stays a no-op until the root command's pre-run hook builds it.
func New(out, errOut io.Writer) *CLI {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &CLI{
		out:    out,
		errOut: errOut,
		v:      v,
		Logger: logr.Discard(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "assignbench solves and benchmarks assignment problems",
		Long: `assignbench computes minimum-cost worker/task assignments with the Hungarian
algorithm and a min-cost max-flow reduction, and compares them against greedy
and exhaustive baselines on generated instances.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.sync() },
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetVersionTemplate(versionTemplate())

	pf := root.PersistentFlags()
	pf.CountVarP(&c.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	pf.StringVar(&c.logFormat, "log-format", logConsole, "log encoding: console or json")
	pf.StringVar(&c.cfgFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// Execute runs the command tree with args. Errors other than cancellation
// are printed to errOut before being returned.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError(c.errOut, "%v", err)
	}

	return err
}

// setup reads the config file, binds flags and installs the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(c.v, cmd.Flags()); err != nil {
		return err
	}
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return err
		}
	}

	zl, err := newZapLogger(c.errOut, c.v.GetString("log-format"), c.v.GetInt("verbose"))
	if err != nil {
		return err
	}
	c.zl = zl
	c.Logger = newLogr(zl)
	cmd.SetContext(logr.NewContext(cmd.Context(), c.Logger))
	if used := c.v.ConfigFileUsed(); used != "" {
		c.Logger.V(1).Info("config loaded", "file", used)
	}

	return nil
}

func (c *CLI) sync() {
	if c.zl != nil {
		_ = c.zl.Sync()
	}
}

// bindFlags exposes every flag of fs to v under its own name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})

	return err
}
