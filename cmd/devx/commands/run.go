package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/zerr"
)

var taskSummaries = map[domain.TaskID]string{
	domain.TaskDocs:  "Build the CLI, then generate docs deterministically",
	domain.TaskTest:  "Run the Rust and Python test suites",
	domain.TaskCi:    "Run full CI: fmt check, clippy, tests, docs and pytest",
	domain.TaskFmt:   "Format Rust code",
	domain.TaskLint:  "Lint Rust code (clippy -D warnings)",
	domain.TaskBuild: "Build the Rust CLI",
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task>",
		Short: "Run a repository task",
		Long:  "Run a repository task. Every step runs even when an earlier one fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return zerr.With(domain.ErrUnknownTask, "task", args[0])
		},
	}

	for _, task := range domain.Tasks() {
		if task == domain.TaskDoctor {
			continue
		}
		cmd.AddCommand(c.newTaskCmd(task))
	}

	return cmd
}

func (c *CLI) newTaskCmd(task domain.TaskID) *cobra.Command {
	return &cobra.Command{
		Use:   task.String(),
		Short: taskSummaries[task],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), task)
		},
	}
}
