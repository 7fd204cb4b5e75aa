package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devx/internal/app"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports/mocks"
	"go.trai.ch/devx/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

type fakeDispatcher struct {
	report *domain.Report
	err    error
	calls  int
}

func (f *fakeDispatcher) Dispatch(_ context.Context, _ domain.TaskID) (*domain.Report, error) {
	f.calls++
	return f.report, f.err
}

func newApp(t *testing.T, d app.Dispatcher) (*app.App, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return app.New(d, dispatcher.NewTable(domain.DefaultLayout()), log), log
}

func TestApp_Run_Success(t *testing.T) {
	report := domain.NewReport(domain.TaskTest)
	report.Record("systems-test", domain.Succeeded())
	report.Record("scripting-test", domain.Succeeded())

	a, log := newApp(t, &fakeDispatcher{report: report})
	log.EXPECT().Info("test: all 2 step(s) succeeded").Times(1)

	require.NoError(t, a.Run(context.Background(), domain.TaskTest))
}

func TestApp_Run_StepFailure(t *testing.T) {
	report := domain.NewReport(domain.TaskCi)
	report.Record("fmt-check", domain.Succeeded())
	report.Record("lint", domain.ExitedNonZero(101))
	report.Record("systems-test", domain.Succeeded())
	report.Record("docs-gen", domain.NotStarted("binary not found: python"))
	report.Record("scripting-test", domain.Succeeded())

	a, log := newApp(t, &fakeDispatcher{report: report})
	log.EXPECT().Warn("ci: 2 of 5 step(s) failed: lint, docs-gen").Times(1)

	err := a.Run(context.Background(), domain.TaskCi)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPipelineFailed)
	assert.ErrorContains(t, err, "step failed")
}

func TestApp_Run_DispatchError(t *testing.T) {
	a, _ := newApp(t, &fakeDispatcher{err: domain.ErrRootNotFound})

	err := a.Run(context.Background(), domain.TaskBuild)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPipelineFailed)
	assert.True(t, errors.Is(err, domain.ErrRootNotFound))
}

func TestApp_Plan(t *testing.T) {
	d := &fakeDispatcher{}
	a, _ := newApp(t, d)

	p, err := a.Plan(domain.TaskDocs)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "docs-gen"}, p.StepNames())
	assert.Zero(t, d.calls, "planning never dispatches")

	_, err = a.Plan("deploy")
	require.Error(t, err)
}
