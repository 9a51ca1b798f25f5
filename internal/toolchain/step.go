package toolchain

import (
	"fmt"
	"time"
)

// Step is one external invocation in the verification chain.
type Step struct {
	Name string
	Tool string   // binary name, resolved on PATH
	Args []string
	Dir  string   // working directory, always inside the materialized tree

	// DependsOn lists predecessor step names. A step starts only once
	// every predecessor has succeeded, or is non-fatal and terminal.
	DependsOn []string

	// Fatal marks a step whose failure aborts the rest of the chain.
	Fatal bool

	// MinVersion, when set, is a semver floor checked against the tool's
	// `--version` output before the step runs.
	MinVersion string
}

// StepStatus is the per-step state machine:
// Pending → Running → {Succeeded, Failed}, or NotRun when the chain
// aborted before the step started.
type StepStatus int

const (
	StatusPending StepStatus = iota
	StatusRunning
	StatusSucceeded
	StatusFailed
	StatusNotRun
)

func (s StepStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusNotRun:
		return "not run"
	default:
		return "unknown"
	}
}

// StepResult records one step's terminal state.
type StepResult struct {
	Step     Step
	Status   StepStatus
	Err      error
	ExitCode int
	Duration time.Duration
}

// ToolUnavailableError reports a required external tool missing from PATH
// or failing its minimum version check. The step fails immediately rather
// than hanging.
type ToolUnavailableError struct {
	Tool   string
	Reason string
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("tool %s unavailable: %s", e.Tool, e.Reason)
}
