package commands

import (
	"github.com/spf13/cobra"
)

// newHelpCmd replaces cobra's help command so that help never fails.
// Unknown topics fall back to the root help.
func (c *CLI) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			target, _, err := c.rootCmd.Find(args)
			if err != nil || target == nil {
				target = c.rootCmd
			}
			return target.Help()
		},
	}
}

// newEmitHelpCmd prints the root help. The docs generator captures it, so
// the output contains no colour or terminal-dependent layout.
func (c *CLI) newEmitHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "emit-help",
		Short:  "Print tool help text (used by the docs generator)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.rootCmd.Help()
		},
	}
}
