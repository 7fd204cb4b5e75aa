// Package linear prints step progress as plain chronological lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/devx/internal/ui/output"
	"go.trai.ch/devx/internal/ui/style"
)

// Renderer implements ports.Renderer by writing one line per event to stderr.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	steps map[string]*stepState // spanID -> step state
}

type stepState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to stderr. A nil profileFn uses output.ColorProfile.
func NewRenderer(stderr io.Writer, profileFn func() termenv.Profile) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}
	if profileFn == nil {
		profileFn = output.ColorProfile
	}

	return &Renderer{
		stderr: stderr,
		output: output.NewWithProfile(stderr, profileFn),
		steps:  make(map[string]*stepState),
	}
}

// OnPlanEmit announces how many steps the task will run.
func (r *Renderer) OnPlanEmit(task string, steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Running %d step(s) for task %s\n", len(steps), task)
}

// OnTaskStart prints a step start message.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{name: name, startTime: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnTaskComplete prints the step's status and duration.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	delete(r.steps, spanID)

	duration := endTime.Sub(step.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", step.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}
