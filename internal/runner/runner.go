// Package runner executes named UI checks against a live portal and folds
// the outcomes into a printable result set.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/kuitang/benefits-e2e/internal/obs"
)

// Check is one named verification against the portal. Fn returns nil on
// success and a descriptive error on failure.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// CheckResult records the outcome of a single check.
type CheckResult struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Results folds every executed check plus the failing subset.
type Results struct {
	Checks   []CheckResult
	Failures []CheckResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// OnFailure is invoked after each failing check, before the next one runs.
// Used by the CLI to capture a screenshot while the page still shows the
// failing state. A nil hook is skipped.
type OnFailure func(ctx context.Context, name string, err error)

// Run executes checks in order, logging each outcome. Checks run even after
// earlier failures so one missing element does not hide the rest.
func Run(ctx context.Context, checks []Check, onFailure OnFailure) Results {
	log := obs.Pkg("runner")
	var results Results
	for _, c := range checks {
		cctx := obs.WithCorrelation(ctx, obs.Correlation{Check: c.Name})
		start := time.Now()
		err := c.Fn(cctx)
		elapsed := time.Since(start)

		result := CheckResult{Name: c.Name, Err: err, Elapsed: elapsed}
		results.Checks = append(results.Checks, result)
		if err != nil {
			results.Failures = append(results.Failures, result)
			log.Error("check failed", "check", c.Name, "error", err, "elapsed", elapsed.String())
			if onFailure != nil {
				onFailure(cctx, c.Name, err)
			}
			continue
		}
		log.Info("check passed", "check", c.Name, "elapsed", elapsed.String())
	}
	return results
}

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Print writes one line per check and a summary to w.
func Print(w io.Writer, r Results) {
	for _, c := range r.Checks {
		if c.Err != nil {
			fmt.Fprintf(w, "%s  %s (%s)\n      %s\n", failMark("FAIL"), c.Name, c.Elapsed.Round(time.Millisecond), c.Err)
			continue
		}
		fmt.Fprintf(w, "%s  %s (%s)\n", passMark("PASS"), c.Name, c.Elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(w)
	if r.OK() {
		fmt.Fprintf(w, "%s: all %d checks passed\n", passMark("OK"), len(r.Checks))
		return
	}
	fmt.Fprintf(w, "%s: %d of %d checks failed\n", failMark("FAILED"), len(r.Failures), len(r.Checks))
}
