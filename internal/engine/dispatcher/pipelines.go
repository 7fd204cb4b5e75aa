package dispatcher

import (
	"slices"

	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Step names. Ci is assembled from the stages in the order listed in Table.Pipeline.
const (
	StageFmt           = "fmt"
	StageFmtCheck      = "fmt-check"
	StageLint          = "lint"
	StageSystemsTest   = "systems-test"
	StageBuild         = "build"
	StageDocsGen       = "docs-gen"
	StageScriptingTest = "scripting-test"
)

const interpreterTool = "python"

// Table builds the pipeline for each task from the repository layout.
type Table struct {
	layout domain.Layout
}

// NewTable creates a Table for layout.
func NewTable(layout domain.Layout) *Table {
	return &Table{layout: layout}
}

// Layout returns the layout the table was built from.
func (t *Table) Layout() domain.Layout {
	return t.layout
}

// Pipeline returns the pipeline for task.
func (t *Table) Pipeline(task domain.TaskID) (domain.Pipeline, error) {
	switch task {
	case domain.TaskFmt:
		return domain.Concat(task, t.stage(StageFmt)), nil
	case domain.TaskLint:
		return domain.Concat(task, t.stage(StageLint)), nil
	case domain.TaskBuild:
		return domain.Concat(task, t.stage(StageBuild)), nil
	case domain.TaskTest:
		return domain.Concat(task, t.stage(StageSystemsTest), t.stage(StageScriptingTest)), nil
	case domain.TaskDocs:
		return domain.Concat(task, t.stage(StageBuild), t.stage(StageDocsGen)), nil
	case domain.TaskCi:
		return domain.Concat(task,
			t.stage(StageFmtCheck),
			t.stage(StageLint),
			t.stage(StageSystemsTest),
			t.stage(StageDocsGen),
			t.stage(StageScriptingTest),
		), nil
	case domain.TaskDoctor:
		return t.doctor(), nil
	default:
		return domain.Pipeline{}, zerr.With(domain.ErrUnknownTask, "task", string(task))
	}
}

// stage returns the single-step pipeline for a named stage.
func (t *Table) stage(name string) domain.Pipeline {
	cargo := domain.Single("cargo")
	interp := t.interpreter()

	var step domain.Step
	switch name {
	case StageFmt:
		step = domain.Step{Tool: cargo, Args: []string{"fmt", "--all"}, Dir: domain.LocationSystems}
	case StageFmtCheck:
		step = domain.Step{Tool: cargo, Args: []string{"fmt", "--all", "--", "--check"}, Dir: domain.LocationSystems}
	case StageLint:
		step = domain.Step{
			Tool: cargo,
			Args: []string{"clippy", "--all-targets", "--", "-D", "warnings"},
			Dir:  domain.LocationSystems,
		}
	case StageSystemsTest:
		step = domain.Step{Tool: cargo, Args: []string{"test"}, Dir: domain.LocationSystems}
	case StageBuild:
		step = domain.Step{Tool: cargo, Args: []string{"build"}, Dir: domain.LocationSystems}
	case StageDocsGen:
		step = domain.Step{Tool: interp, Args: []string{t.layout.DocsScript}, Dir: domain.LocationRoot}
	case StageScriptingTest:
		step = domain.Step{Tool: interp, Args: []string{"-m", "pytest", "-q"}, Dir: domain.LocationScripting}
	}
	step.Name = name
	step.Kind = domain.StepRun

	return domain.Pipeline{Steps: []domain.Step{step}}
}

func (t *Table) doctor() domain.Pipeline {
	interp := t.interpreter()
	probe := func(name string, tool domain.Tool, args ...string) domain.Step {
		return domain.Step{Name: name, Kind: domain.StepProbe, Tool: tool, Args: args}
	}

	return domain.Pipeline{
		Task: domain.TaskDoctor,
		Steps: []domain.Step{
			probe("rustc", domain.Single("rustc"), domain.ProbeArg),
			probe("cargo", domain.Single("cargo"), domain.ProbeArg),
			probe("interpreter", interp, domain.ProbeArg),
			probe("pytest", interp, "-m", "pytest", domain.ProbeArg),
		},
	}
}

func (t *Table) interpreter() domain.Tool {
	return domain.Tool{Name: interpreterTool, Candidates: slices.Clone(t.layout.Interpreters)}
}
