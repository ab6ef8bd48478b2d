package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Options configures a reconciliation run.
type Options struct {
	// DryRun stops after reporting: the Deleter is never touched and
	// Confirm is never called.
	DryRun bool
	// Concurrency bounds the parallel existence checks (minimum 1).
	Concurrency int
	// Confirm is consulted once, after classification finds missing
	// records. It receives the report in the plan_reported state and
	// returns whether to proceed with deletion. A nil Confirm means no
	// authority to proceed: the run aborts. Interactive prompting lives in
	// the caller; this is a plain decision, never input parsing.
	Confirm func(*Report) bool
	// Logger receives run progress; nil discards.
	Logger *slog.Logger
}

// Runner drives a single reconciliation run through its states:
// read, classify, report, await confirmation, apply.
type Runner struct {
	source  Source
	deleter Deleter
	checker Checker
	opts    Options
}

// NewRunner wires a runner from its collaborators.
func NewRunner(source Source, deleter Deleter, checker Checker, opts Options) *Runner {
	return &Runner{source: source, deleter: deleter, checker: checker, opts: opts}
}

// Run executes one reconciliation pass and returns its report. The only
// error return is a failure to read or classify (catalog.ErrStoreUnreadable
// or context cancellation); everything after that point is expressed in the
// report itself.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.source == nil || r.checker == nil {
		return nil, errors.New("reconcile: runner requires a source and a checker")
	}
	logger := r.opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	records, err := r.source.ReadEligible(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("read eligible records", slog.Int("count", len(records)))

	found, missing, err := Classify(ctx, records, r.checker, r.opts.Concurrency)
	if err != nil {
		return nil, err
	}
	report := &Report{Found: found, Missing: missing}
	logger.Info("classified catalog",
		slog.Int("total", report.Total()),
		slog.Int("found", found),
		slog.Int("missing", len(missing)),
	)

	if len(missing) == 0 {
		report.Status = StatusAllPresent
		return report, nil
	}

	if r.opts.DryRun {
		report.Status = StatusPlanReported
		return report, nil
	}

	report.Status = StatusPlanReported
	if r.opts.Confirm == nil || !r.opts.Confirm(report) {
		report.Status = StatusAborted
		logger.Info("deletion declined, no changes made")
		return report, nil
	}

	if r.deleter == nil {
		return nil, errors.New("reconcile: confirmed run requires a deleter")
	}
	report.Outcomes = Apply(ctx, r.deleter, missing, logger)
	report.Status = StatusApplied
	logger.Info("deletion plan applied",
		slog.Int("attempted", report.Attempted()),
		slog.Int("succeeded", report.Succeeded()),
		slog.Int("failed", report.Failed()),
	)
	return report, nil
}
