package reconcile

import (
	"context"

	"mediasweep/internal/catalog"
)

// Source reads reconciliation-eligible records from the catalog store.
type Source interface {
	ReadEligible(ctx context.Context) ([]catalog.Record, error)
}

// Deleter removes a single catalog record by identifier. The boolean reports
// whether a row was actually removed.
type Deleter interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// Checker reports filesystem existence for a catalog path.
type Checker interface {
	Exists(path string) bool
}

// Status is the terminal state of a reconciliation run.
type Status string

const (
	// StatusAllPresent: every eligible record's file exists; nothing to do.
	StatusAllPresent Status = "all_present"
	// StatusPlanReported: missing records were found but the run was dry.
	StatusPlanReported Status = "plan_reported"
	// StatusApplied: the deletion plan was executed (possibly with
	// per-record failures; inspect the outcomes).
	StatusApplied Status = "applied"
	// StatusAborted: the user declined confirmation. Zero side effects.
	StatusAborted Status = "aborted"
)

// Outcome records one deletion attempt.
type Outcome struct {
	Record catalog.Record
	Err    error
}

// Succeeded reports whether the delete went through.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Report carries the structured results of a run. Formatting is entirely the
// caller's concern; nothing in this package prints.
type Report struct {
	Status   Status
	Found    int
	Missing  []catalog.Record
	Outcomes []Outcome
}

// Total returns how many eligible records entered classification.
func (r *Report) Total() int {
	return r.Found + len(r.Missing)
}

// Attempted returns how many deletions were issued.
func (r *Report) Attempted() int {
	return len(r.Outcomes)
}

// Succeeded returns how many deletions the store accepted.
func (r *Report) Succeeded() int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Succeeded() {
			n++
		}
	}
	return n
}

// Failed returns how many deletions the store rejected.
func (r *Report) Failed() int {
	return r.Attempted() - r.Succeeded()
}
