// Package domain holds the core types of devx: tasks, pipelines and step results.
package domain

import "go.trai.ch/zerr"

// TaskID identifies one of the user-invokable tasks.
type TaskID string

const (
	// TaskDocs regenerates the command reference documentation.
	TaskDocs TaskID = "docs"
	// TaskTest runs the systems-language and scripting-language test suites.
	TaskTest TaskID = "test"
	// TaskCi runs the full continuous integration pipeline.
	TaskCi TaskID = "ci"
	// TaskFmt formats the systems-language sources in place.
	TaskFmt TaskID = "fmt"
	// TaskLint runs static analysis with warnings elevated to errors.
	TaskLint TaskID = "lint"
	// TaskBuild builds the systems-language project.
	TaskBuild TaskID = "build"
	// TaskDoctor probes the local toolchain without changing anything.
	TaskDoctor TaskID = "doctor"
)

var allTasks = []TaskID{TaskDocs, TaskTest, TaskCi, TaskFmt, TaskLint, TaskBuild, TaskDoctor}

// Tasks returns every task identifier in display order.
func Tasks() []TaskID {
	out := make([]TaskID, len(allTasks))
	copy(out, allTasks)
	return out
}

// ParseTaskID maps a task name to its identifier.
func ParseTaskID(name string) (TaskID, error) {
	for _, t := range allTasks {
		if string(t) == name {
			return t, nil
		}
	}
	return "", zerr.With(ErrUnknownTask, "task", name)
}

// String returns the task name.
func (t TaskID) String() string {
	return string(t)
}
