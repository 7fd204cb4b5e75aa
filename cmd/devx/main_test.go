package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/devx/internal/app"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/devx/internal/core/ports/mocks"
	"go.trai.ch/devx/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

type stubDispatcher struct {
	report *domain.Report
	err    error
	ctx    context.Context
}

func (s *stubDispatcher) Dispatch(ctx context.Context, _ domain.TaskID) (*domain.Report, error) {
	s.ctx = ctx
	return s.report, s.err
}

func providerFor(d app.Dispatcher, log *mocks.MockLogger) ComponentProvider {
	application := app.New(d, dispatcher.NewTable(domain.DefaultLayout()), log)
	return func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, providerFor(&stubDispatcher{}, mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "devx version")
	assert.Empty(t, stderr.String())
}

// TestRun_TaskSucceeded verifies the exit status of a fully successful task.
func TestRun_TaskSucceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("build: all 1 step(s) succeeded")

	report := domain.NewReport(domain.TaskBuild)
	report.Record("build", domain.Succeeded())

	exitCode := run(context.Background(), []string{"run", "build"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(&stubDispatcher{report: report}, mockLogger))

	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that commands needing the app fail with status 2
// and the error is logged when the components cannot be built.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	for _, args := range [][]string{{"run", "build"}, {"doctor"}, {"plan", "ci"}} {
		stderr := new(bytes.Buffer)
		exitCode := run(context.Background(), args, new(bytes.Buffer), stderr, provider)

		assert.Equal(t, 2, exitCode, "args %v", args)
		assert.Contains(t, stderr.String(), "Error: init failed", "args %v", args)
	}
}

// TestRun_InitializationErrorKeepsHelp verifies that help and version need no components.
func TestRun_InitializationErrorKeepsHelp(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	for _, args := range [][]string{{"help"}, {"emit-help"}, {"--help"}, {}, {"version"}} {
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		exitCode := run(context.Background(), args, stdout, stderr, provider)

		assert.Equal(t, 0, exitCode, "args %v", args)
		assert.NotEmpty(t, stdout.String(), "args %v", args)
		assert.Empty(t, stderr.String(), "args %v", args)
	}
}

// TestRun_InvalidSettings runs the real dependency graph with a bad DEVX_ variable.
func TestRun_InvalidSettings(t *testing.T) {
	t.Setenv("DEVX_LOG_FORMAT", "xml")
	provider := func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx, graft.DisableCache())
		return c, err
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"help"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "doctor")

	stderr := new(bytes.Buffer)
	exitCode = run(context.Background(), []string{"run", "build"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr.String(), `DEVX_LOG_FORMAT="xml": expected pretty or json`)
	assert.Contains(t, stderr.String(), "invalid configuration")
}

// TestRun_StepFailure verifies that a failed step exits 2 without logging the error a second time.
func TestRun_StepFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("lint: 1 of 1 step(s) failed: lint")
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)

	report := domain.NewReport(domain.TaskLint)
	report.Record("lint", domain.ExitedNonZero(101))

	exitCode := run(context.Background(), []string{"run", "lint"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(&stubDispatcher{report: report}, mockLogger))

	assert.Equal(t, 2, exitCode)
}

// TestRun_ExecutionError verifies that errors which stop a task before any step are logged.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(domain.ErrRootNotFound).Times(1)

	exitCode := run(context.Background(), []string{"run", "ci"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(&stubDispatcher{err: domain.ErrRootNotFound}, mockLogger))

	assert.Equal(t, 2, exitCode)
}

// TestRun_UnknownCommand verifies that usage errors share the failure status.
func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"deploy"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(&stubDispatcher{}, mockLogger))

	assert.Equal(t, 2, exitCode)
}

// TestRun_Help verifies that help exits 0.
func TestRun_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	for _, args := range [][]string{{"help"}, {"emit-help"}, {"--help"}, {}} {
		stdout := new(bytes.Buffer)
		exitCode := run(context.Background(), args, stdout, new(bytes.Buffer), providerFor(&stubDispatcher{}, mockLogger))

		assert.Equal(t, 0, exitCode, "args %v", args)
		assert.Contains(t, stdout.String(), "doctor", "args %v", args)
	}
}

// TestRun_Signal verifies that the dispatcher receives a cancellable context.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := domain.NewReport(domain.TaskTest)
	report.Record("systems-test", domain.NotStarted(domain.ErrInterrupted.Error()))
	report.Record("scripting-test", domain.NotStarted(domain.ErrInterrupted.Error()))
	d := &stubDispatcher{report: report}

	exitCode := run(ctx, []string{"run", "test"}, new(bytes.Buffer), new(bytes.Buffer), providerFor(d, mockLogger))

	assert.Equal(t, 2, exitCode)
	if assert.NotNil(t, d.ctx) {
		assert.Error(t, d.ctx.Err())
	}
}
