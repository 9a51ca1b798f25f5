package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Runner executes a step chain sequentially against the materialized tree.
// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer

	// Quiet suppresses per-step banners; step output still streams.
	Quiet bool
}

// Run executes the steps strictly in declaration order and returns the
// aggregated report. A fatal step's failure aborts the chain: every later
// step stays NotRun. Non-fatal failures are recorded and the chain
// continues. Each step gets exactly one attempt; there are no retries and
// no internal timeout, so cancellation comes only from ctx.
func (r *Runner) Run(ctx context.Context, steps []Step) *Report {
	results := make([]StepResult, len(steps))
	byName := make(map[string]*StepResult, len(steps))
	for i := range steps {
		results[i] = StepResult{Step: steps[i], Status: StatusPending}
		byName[steps[i].Name] = &results[i]
	}

	aborted := false
	for i := range results {
		res := &results[i]
		if aborted {
			res.Status = StatusNotRun
			continue
		}

		if dep, ok := unmetDependency(res.Step, byName); ok {
			// A step that cannot start is a failed step, not a skipped one.
			res.Status = StatusFailed
			res.Err = fmt.Errorf("dependency %q did not succeed", dep)
			if res.Step.Fatal {
				aborted = true
			}
			continue
		}

		res.Status = StatusRunning
		r.banner(res.Step)
		r.execute(ctx, res)

		if res.Status == StatusFailed && res.Step.Fatal {
			aborted = true
		}
	}

	return summarize(results)
}

// unmetDependency returns the first predecessor blocking the step. A
// predecessor blocks unless it succeeded, or it is non-fatal and reached a
// terminal state.
func unmetDependency(step Step, byName map[string]*StepResult) (string, bool) {
	for _, dep := range step.DependsOn {
		pred, ok := byName[dep]
		if !ok {
			return dep, true
		}
		if pred.Status == StatusSucceeded {
			continue
		}
		if !pred.Step.Fatal && (pred.Status == StatusFailed || pred.Status == StatusSucceeded) {
			continue
		}
		return dep, true
	}
	return "", false
}

func (r *Runner) banner(s Step) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.stdout(), "==> %s: %s %s\n", s.Name, s.Tool, strings.Join(s.Args, " "))
}

// execute runs one step's external command, streaming output while
// capturing it. Resolution and version-check failures fail the step
// immediately with ToolUnavailableError instead of hanging.
func (r *Runner) execute(ctx context.Context, res *StepResult) {
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	bin, err := exec.LookPath(res.Step.Tool)
	if err != nil {
		res.Status = StatusFailed
		res.Err = &ToolUnavailableError{Tool: res.Step.Tool, Reason: "not found on PATH"}
		return
	}

	if res.Step.MinVersion != "" {
		if err := checkToolVersion(ctx, bin, res.Step.Tool, res.Step.MinVersion); err != nil {
			res.Status = StatusFailed
			res.Err = err
			return
		}
	}

	cmd := exec.CommandContext(ctx, bin, res.Step.Args...)
	cmd.Dir = res.Step.Dir

	var stderrBuf bytes.Buffer
	cmd.Stdout = r.stdout()
	cmd.Stderr = io.MultiWriter(r.stderr(), &stderrBuf)

	err = cmd.Run()
	if err != nil {
		res.Status = StatusFailed
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			res.Err = fmt.Errorf("%s exited with status %d", res.Step.Tool, res.ExitCode)
			return
		}
		res.Err = fmt.Errorf("running %s: %w", res.Step.Tool, err)
		return
	}

	res.Status = StatusSucceeded
}

// Probe verifies that a tool resolves on PATH and meets the version floor,
// without running it against any target.
func Probe(ctx context.Context, tool, minVersion string) error {
	bin, err := exec.LookPath(tool)
	if err != nil {
		return &ToolUnavailableError{Tool: tool, Reason: "not found on PATH"}
	}
	if minVersion == "" {
		return nil
	}
	return checkToolVersion(ctx, bin, tool, minVersion)
}

var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// checkToolVersion runs `tool --version` and enforces the semver floor.
// Tools whose version output cannot be parsed are given the benefit of the
// doubt; the real invocation will surface any incompatibility.
func checkToolVersion(ctx context.Context, bin, tool, minVersion string) error {
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return &ToolUnavailableError{Tool: tool, Reason: fmt.Sprintf("--version failed: %v", err)}
	}

	token := versionToken.FindString(string(out))
	if token == "" {
		return nil
	}
	current, err := semver.NewVersion(token)
	if err != nil {
		return nil
	}

	floor, err := semver.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("invalid minimum version %q for %s: %w", minVersion, tool, err)
	}
	if current.LessThan(floor) {
		return &ToolUnavailableError{
			Tool:   tool,
			Reason: fmt.Sprintf("version %s is older than required %s", current, floor),
		}
	}
	return nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
