package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/devx/internal/core/domain"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the toolchains devx needs are installed",
		Long: "Probe rustc, cargo, a Python interpreter and pytest. Every probe runs even\n" +
			"when an earlier one fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), domain.TaskDoctor)
		},
	}
}
