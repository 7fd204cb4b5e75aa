package ports

import "time"

// Renderer presents step progress to the user.
// Child process output does not pass through the renderer.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once before the first step of a task starts.
	OnPlanEmit(task string, steps []string)

	// OnTaskStart is called when a step begins.
	// spanID: unique identifier for this step execution
	OnTaskStart(spanID, name string, startTime time.Time)

	// OnTaskComplete is called when a step finishes.
	// err: nil if successful, error otherwise
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
