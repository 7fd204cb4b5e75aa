package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when no ancestor of the working directory contains the root marker.
	ErrRootNotFound = zerr.New("could not find repository root")

	// ErrNoUsableTool is returned when every candidate binary for a tool failed its probe.
	ErrNoUsableTool = zerr.New("no usable tool found")

	// ErrStepFailed is reported when a step ran and exited with a failure status.
	ErrStepFailed = zerr.New("step failed")

	// ErrSpawnFailed is reported when a step's binary could not be launched.
	ErrSpawnFailed = zerr.New("failed to start process")

	// ErrPipelineFailed is returned when at least one step of a pipeline failed.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrUnknownTask is returned when a task name does not match any task.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrInvalidConfig is returned when environment settings are inconsistent.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrWorkDirUnavailable is returned when the current working directory cannot be determined.
	ErrWorkDirUnavailable = zerr.New("failed to determine working directory")

	// ErrInterrupted is reported for steps that were not started because of an interrupt.
	ErrInterrupted = zerr.New("interrupted before start")
)
