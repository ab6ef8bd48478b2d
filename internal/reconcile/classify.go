package reconcile

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mediasweep/internal/catalog"
)

// Classify partitions records into found and missing by checking each path's
// existence. Every input record lands in exactly one bucket:
// found + len(missing) == len(records).
//
// Checks run on a worker pool bounded by concurrency (values below 1 run
// sequentially). Results are collected per input index and the missing list
// is re-sorted afterwards, so report order is deterministic regardless of
// which checks finish first.
func Classify(ctx context.Context, records []catalog.Record, checker Checker, concurrency int) (found int, missing []catalog.Record, err error) {
	if len(records) == 0 {
		return 0, nil, nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	exists := make([]bool, len(records))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, record := range records {
		i, record := i, record
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			exists[i] = checker.Exists(record.Path)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, nil, err
	}

	for i, record := range records {
		if exists[i] {
			found++
		} else {
			missing = append(missing, record)
		}
	}
	sortPlan(missing)
	return found, missing, nil
}

// sortPlan orders a deletion plan by (type, name, id) ascending. Names are
// compared with a loose collation so "Éloge" and "eloge" sort together the
// way a library listing would; the id tiebreak keeps duplicate names stable.
func sortPlan(plan []catalog.Record) {
	if len(plan) < 2 {
		return
	}
	collator := collate.New(language.Und, collate.Loose)
	slices.SortStableFunc(plan, func(a, b catalog.Record) int {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		if c := collator.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
