package domain

import "fmt"

const (
	// ExitOK is the process exit status when every step succeeded.
	ExitOK = 0
	// ExitFailure is the single exit status used for every failure cause.
	ExitFailure = 2
)

// StepResult is the outcome of one step.
type StepResult struct {
	OK         bool
	ExitCode   int
	Diagnostic string
}

// Succeeded returns a successful result.
func Succeeded() StepResult {
	return StepResult{OK: true}
}

// ExitedNonZero returns the result of a process that ran and reported failure.
func ExitedNonZero(code int) StepResult {
	return StepResult{
		ExitCode:   code,
		Diagnostic: fmt.Sprintf("exited with status %d", code),
	}
}

// NotStarted returns the result of a process that could not be launched.
func NotStarted(reason string) StepResult {
	return StepResult{ExitCode: -1, Diagnostic: reason}
}

// Outcome pairs a step name with its result.
type Outcome struct {
	Step   string
	Result StepResult
}

// Report collects the outcomes of a pipeline run and folds them into one status.
type Report struct {
	Task     TaskID
	Outcomes []Outcome
}

// NewReport creates an empty report for task.
func NewReport(task TaskID) *Report {
	return &Report{Task: task}
}

// Record appends the outcome of a step.
func (r *Report) Record(step string, res StepResult) {
	r.Outcomes = append(r.Outcomes, Outcome{Step: step, Result: res})
}

// OK reports whether every recorded step succeeded.
func (r *Report) OK() bool {
	results := make([]StepResult, len(r.Outcomes))
	for i, o := range r.Outcomes {
		results[i] = o.Result
	}
	return Aggregate(results...)
}

// Failed returns the names of the failed steps in execution order.
func (r *Report) Failed() []string {
	var failed []string
	for _, o := range r.Outcomes {
		if !o.Result.OK {
			failed = append(failed, o.Step)
		}
	}
	return failed
}

// ExitCode maps the aggregate status to the process exit status.
func (r *Report) ExitCode() int {
	return ExitCodeFor(r.OK())
}

// Aggregate is the logical AND of all results. It inspects every element.
func Aggregate(results ...StepResult) bool {
	ok := true
	for _, res := range results {
		ok = ok && res.OK
	}
	return ok
}

// ExitCodeFor maps an overall status to ExitOK or ExitFailure.
func ExitCodeFor(ok bool) int {
	if ok {
		return ExitOK
	}
	return ExitFailure
}
