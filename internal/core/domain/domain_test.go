package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devx/internal/core/domain"
)

func TestParseTaskID(t *testing.T) {
	for _, task := range domain.Tasks() {
		got, err := domain.ParseTaskID(task.String())
		require.NoError(t, err)
		assert.Equal(t, task, got)
	}

	_, err := domain.ParseTaskID("deploy")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownTask.Error())
}

func TestTasks_ReturnsCopy(t *testing.T) {
	tasks := domain.Tasks()
	tasks[0] = "mutated"

	assert.Equal(t, domain.TaskDocs, domain.Tasks()[0])
}

func TestAggregate(t *testing.T) {
	ok := domain.Succeeded()
	fail := domain.ExitedNonZero(1)

	tests := []struct {
		name    string
		results []domain.StepResult
		want    bool
	}{
		{name: "empty", results: nil, want: true},
		{name: "all ok", results: []domain.StepResult{ok, ok, ok}, want: true},
		{name: "one failure in the middle", results: []domain.StepResult{ok, fail, ok}, want: false},
		{name: "failure first", results: []domain.StepResult{fail, ok}, want: false},
		{name: "spawn failure", results: []domain.StepResult{ok, domain.NotStarted("binary not found")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Aggregate(tt.results...))
		})
	}
}

func TestReport(t *testing.T) {
	r := domain.NewReport(domain.TaskCi)
	r.Record("fmt-check", domain.Succeeded())
	r.Record("lint", domain.ExitedNonZero(101))
	r.Record("systems-test", domain.Succeeded())

	assert.False(t, r.OK())
	assert.Equal(t, []string{"lint"}, r.Failed())
	assert.Equal(t, domain.ExitFailure, r.ExitCode())
	assert.Len(t, r.Outcomes, 3)
	assert.Equal(t, "exited with status 101", r.Outcomes[1].Result.Diagnostic)
}

func TestReport_Empty(t *testing.T) {
	r := domain.NewReport(domain.TaskDoctor)

	assert.True(t, r.OK())
	assert.Equal(t, domain.ExitOK, r.ExitCode())
	assert.Empty(t, r.Failed())
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 0, domain.ExitCodeFor(true))
	assert.Equal(t, 2, domain.ExitCodeFor(false))
	assert.NotEqual(t, domain.ExitOK, domain.ExitFailure)
}

func TestPipeline(t *testing.T) {
	cargo := domain.Single("cargo")
	python := domain.Tool{Name: "python", Candidates: []string{"python", "python3"}}

	build := domain.Pipeline{Task: domain.TaskBuild, Steps: []domain.Step{
		{Name: "build", Tool: cargo, Args: []string{"build"}, Dir: domain.LocationSystems},
	}}
	docs := domain.Pipeline{Task: domain.TaskDocs, Steps: []domain.Step{
		{Name: "docs-gen", Tool: python, Args: []string{"gen.py"}, Dir: domain.LocationRoot},
	}}

	p := domain.Concat(domain.TaskDocs, build, docs)

	assert.Equal(t, domain.TaskDocs, p.Task)
	assert.Equal(t, []string{"build", "docs-gen"}, p.StepNames())
	assert.True(t, p.NeedsRoot())
	assert.Equal(t, []domain.Tool{cargo, python}, p.Tools())
	assert.Equal(t, "python|python3 gen.py", p.Steps[1].Describe())
}

func TestPipeline_ProbesNeedNoRootOrResolution(t *testing.T) {
	p := domain.Pipeline{Task: domain.TaskDoctor, Steps: []domain.Step{
		{Name: "rustc", Kind: domain.StepProbe, Tool: domain.Single("rustc"), Args: []string{"--version"}},
	}}

	assert.False(t, p.NeedsRoot())
	assert.Empty(t, p.Tools())
}

func TestPipeline_ToolsDeduplicated(t *testing.T) {
	cargo := domain.Single("cargo")
	p := domain.Pipeline{Steps: []domain.Step{
		{Name: "a", Tool: cargo},
		{Name: "b", Tool: cargo},
	}}

	assert.Equal(t, []domain.Tool{cargo}, p.Tools())
}

func TestLayout_Dir(t *testing.T) {
	l := domain.DefaultLayout()
	root := filepath.Join("/", "repo")

	assert.Equal(t, root, l.Dir(root, domain.LocationRoot))
	assert.Equal(t, filepath.Join(root, "rust", "devx_cli"), l.Dir(root, domain.LocationSystems))
	assert.Equal(t, filepath.Join(root, "python", "tools"), l.Dir(root, domain.LocationScripting))
	assert.Empty(t, l.Dir(root, domain.LocationNone))
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, ".git", s.Marker)
	assert.Equal(t, []string{"python", "python3"}, s.Interpreters)
	assert.Equal(t, domain.LogFormatPretty, s.LogFormat)
	assert.Equal(t, domain.OutputAuto, s.Output)
}
