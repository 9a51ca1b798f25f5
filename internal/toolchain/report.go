package toolchain

import (
	"fmt"
	"io"
	"time"
)

// Overall is the aggregate outcome of one verification chain.
type Overall int

const (
	// Success means every declared step succeeded.
	Success Overall = iota
	// PartialFailure means only non-fatal steps failed.
	PartialFailure
	// Aborted means a fatal step failed and the chain stopped early.
	Aborted
)

func (o Overall) String() string {
	switch o {
	case Success:
		return "success"
	case PartialFailure:
		return "partial failure"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Report is the final aggregate of one run: overall status, per-step
// results, and the first fatal failure if any.
type Report struct {
	Overall    Overall
	Steps      []StepResult
	FirstFatal *StepResult
}

// summarize derives the overall status from terminal step states. Success
// is never inferred from partial evidence: a step that never ran stays
// NotRun, distinct from Succeeded.
func summarize(results []StepResult) *Report {
	rep := &Report{Overall: Success, Steps: results}
	for i := range results {
		res := &results[i]
		switch res.Status {
		case StatusFailed:
			if res.Step.Fatal {
				rep.Overall = Aborted
				if rep.FirstFatal == nil {
					rep.FirstFatal = res
				}
			} else if rep.Overall == Success {
				rep.Overall = PartialFailure
			}
		case StatusNotRun, StatusPending:
			// Reached only after an abort; overall is already Aborted.
		}
	}
	return rep
}

// OK reports whether every step succeeded.
func (r *Report) OK() bool { return r.Overall == Success }

// Print writes the per-step table and the overall verdict.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Verification report:")
	for i := range r.Steps {
		res := &r.Steps[i]
		switch res.Status {
		case StatusSucceeded:
			fmt.Fprintf(w, "  [ OK ] %s (%s)\n", res.Step.Name, res.Duration.Round(time.Millisecond))
		case StatusFailed:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", res.Step.Name, res.Err)
		case StatusNotRun, StatusPending:
			fmt.Fprintf(w, "  [SKIP] %s: not run\n", res.Step.Name)
		}
	}

	switch r.Overall {
	case Success:
		fmt.Fprintln(w, "All steps succeeded.")
	case PartialFailure:
		fmt.Fprintln(w, "Completed with non-fatal failures.")
	case Aborted:
		if r.FirstFatal != nil {
			fmt.Fprintf(w, "Aborted at step %q: %v\n", r.FirstFatal.Step.Name, r.FirstFatal.Err)
		} else {
			fmt.Fprintln(w, "Aborted.")
		}
	}
}
