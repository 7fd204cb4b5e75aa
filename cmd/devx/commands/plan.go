package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errUnknownFormat = zerr.New("unknown plan format")

type planDoc struct {
	Task  string     `yaml:"task"`
	Steps []planStep `yaml:"steps"`
}

type planStep struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Command string `yaml:"command"`
	Dir     string `yaml:"dir"`
}

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <task>",
		Short: "Show the steps a task would run, without running them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			task, err := domain.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			pipeline, err := c.app.Plan(task)
			if err != nil {
				return err
			}

			return writePlan(cmd.OutOrStdout(), toPlanDoc(pipeline), format)
		},
	}

	validArgs := make([]string, 0, len(domain.Tasks()))
	for _, t := range domain.Tasks() {
		validArgs = append(validArgs, t.String())
	}
	cmd.ValidArgs = validArgs

	cmd.Flags().StringP("format", "f", formatText, "Output format: text or yaml")
	return cmd
}

func toPlanDoc(p domain.Pipeline) planDoc {
	doc := planDoc{Task: p.Task.String()}
	for _, s := range p.Steps {
		kind := "run"
		if s.Kind == domain.StepProbe {
			kind = "probe"
		}
		doc.Steps = append(doc.Steps, planStep{
			Name:    s.Name,
			Kind:    kind,
			Command: s.Describe(),
			Dir:     s.Dir.String(),
		})
	}
	return doc
}

func writePlan(w io.Writer, doc planDoc, format string) error {
	switch format {
	case formatText:
		_, _ = fmt.Fprintf(w, "%s: %d step(s)\n", doc.Task, len(doc.Steps))
		for i, s := range doc.Steps {
			_, _ = fmt.Fprintf(w, "%d. %s [%s, %s]: %s\n", i+1, s.Name, s.Kind, s.Dir, s.Command)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to encode plan")
		}
		return enc.Close()
	default:
		return zerr.With(errUnknownFormat, "format", format)
	}
}
