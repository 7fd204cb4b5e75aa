package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/devx/internal/adapters/telemetry"
	"go.trai.ch/devx/internal/core/ports"
	"go.trai.ch/devx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "lint", gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "lint")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_NilRenderer(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "lint")
	span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
		bridge.OnEnd(rwSpan)
	}
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().
		OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Equal(t, "exited with status 101", err.Error())
		}).
		Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "lint")
	span.SetStatus(codes.Error, "exited with status 101")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}

func TestOTelTracer_DrivesRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	tracer := telemetry.NewOTelTracer(mockRenderer)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	var startedID string
	gomock.InOrder(
		mockRenderer.EXPECT().OnPlanEmit("build", []string{"build"}),
		mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "build", gomock.Any()).
			Do(func(id, _ string, _ time.Time) { startedID = id }),
		mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Nil()).
			Do(func(id string, _ time.Time, _ error) { assert.Equal(t, startedID, id) }),
	)

	ctx := context.Background()
	tracer.EmitPlan(ctx, "build", []string{"build"})
	_, span := tracer.Start(ctx, "build", ports.WithAttribute("step.dir", "systems"))
	span.SetAttribute("step.exit_code", 0)
	span.End()
}

func TestOTelTracer_RecordErrorReachesRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	tracer := telemetry.NewOTelTracer(mockRenderer)

	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "fmt", gomock.Any())
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()))

	_, span := tracer.Start(context.Background(), "fmt")
	span.RecordError(errors.New("binary not found: cargo"))
	span.End()
}
