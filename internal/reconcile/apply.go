package reconcile

import (
	"context"
	"io"
	"log/slog"

	"mediasweep/internal/catalog"
)

// Apply executes a deletion plan sequentially in plan order and returns one
// Outcome per record. A store failure on one identifier never prevents the
// remaining attempts; the caller distinguishes attempted from succeeded via
// the outcomes.
//
// Apply does not re-check existence. The plan is trusted as computed
// (snapshot consistency); see the package comment for why.
func Apply(ctx context.Context, deleter Deleter, plan []catalog.Record, logger *slog.Logger) []Outcome {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	outcomes := make([]Outcome, 0, len(plan))
	for _, record := range plan {
		removed, err := deleter.Delete(ctx, record.ID)
		switch {
		case err != nil:
			logger.Warn("delete failed",
				slog.String("id", record.ID),
				slog.String("name", record.Name),
				slog.Any("error", err),
			)
		case !removed:
			// Row vanished between read and delete. The store reports
			// success with zero rows; treat it as done.
			logger.Debug("record already gone",
				slog.String("id", record.ID),
				slog.String("name", record.Name),
			)
		default:
			logger.Info("removed catalog record",
				slog.String("id", record.ID),
				slog.String("type", record.Type),
				slog.String("name", record.Name),
			)
		}
		outcomes = append(outcomes, Outcome{Record: record, Err: err})
	}

	if failed := countFailed(outcomes); failed > 0 {
		logger.Warn("deletion plan applied with failures",
			slog.Int("attempted", len(outcomes)),
			slog.Int("failed", failed),
		)
	}
	return outcomes
}

func countFailed(outcomes []Outcome) int {
	n := 0
	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			n++
		}
	}
	return n
}
