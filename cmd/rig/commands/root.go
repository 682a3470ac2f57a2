// Package commands implements the CLI commands for the rig build tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rig/internal/core/domain"
)

// CLI represents the command line interface for rig.
type CLI struct {
	app     Application
	base    domain.Invocation
	rootCmd *cobra.Command
	outcome domain.Outcome
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, inv domain.Invocation) domain.Outcome
}

// New creates a new CLI instance with the given app. Every build invocation
// starts from base and takes its arguments from the command line.
func New(a Application, base domain.Invocation) *CLI {
	c := &CLI{
		app:  a,
		base: base,
	}

	// Target names and build parameters are only known once the build file
	// is loaded, so the arguments are handed to the build untouched.
	rootCmd := &cobra.Command{
		Use:                "rig [targets...] [--<parameter> value...]",
		Short:              "A build automation tool driven by rig.yaml",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := c.base
			inv.Args = args
			c.outcome = c.app.Run(cmd.Context(), inv)
			return nil
		},
	}
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context and returns the
// outcome of the build invocation, if one ran.
func (c *CLI) Execute(ctx context.Context) (domain.Outcome, error) {
	c.outcome = domain.Outcome{}
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	return c.outcome, err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
