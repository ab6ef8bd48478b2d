package reconcile_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mediasweep/internal/catalog"
	"mediasweep/internal/reconcile"
)

type fakeSource struct {
	records []catalog.Record
	err     error
}

func (f *fakeSource) ReadEligible(context.Context) ([]catalog.Record, error) {
	return f.records, f.err
}

func newRunner(src *fakeSource, del *fakeDeleter, chk reconcile.Checker, opts reconcile.Options) *reconcile.Runner {
	if opts.Concurrency == 0 {
		opts.Concurrency = 4
	}
	return reconcile.NewRunner(src, del, chk, opts)
}

func TestRunAllPresent(t *testing.T) {
	records := []catalog.Record{
		record("m1", "movie", "Alien", "/media/alien.mkv"),
	}
	src := &fakeSource{records: records}
	del := &fakeDeleter{}
	chk := &fakeChecker{present: map[string]bool{"/media/alien.mkv": true}}

	report, err := newRunner(src, del, chk, reconcile.Options{
		Confirm: func(*reconcile.Report) bool { t.Fatal("confirm must not run when all present"); return false },
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Status != reconcile.StatusAllPresent {
		t.Fatalf("expected all_present, got %s", report.Status)
	}
	if report.Found != 1 || len(report.Missing) != 0 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if len(del.calls) != 0 {
		t.Fatalf("deleter must stay untouched, saw %d calls", len(del.calls))
	}
}

func TestRunEmptyCatalogReportsAllPresent(t *testing.T) {
	report, err := newRunner(&fakeSource{}, &fakeDeleter{}, &fakeChecker{}, reconcile.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Status != reconcile.StatusAllPresent || report.Total() != 0 {
		t.Fatalf("expected trivial all_present, got %+v", report)
	}
}

func TestRunDryModeNeverDeletesNorConfirms(t *testing.T) {
	records := []catalog.Record{
		record("m1", "movie", "Alien", "/media/alien.mkv"),
	}
	src := &fakeSource{records: records}
	del := &fakeDeleter{}

	report, err := newRunner(src, del, &fakeChecker{}, reconcile.Options{
		DryRun:  true,
		Confirm: func(*reconcile.Report) bool { t.Fatal("confirm must not run in dry mode"); return true },
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Status != reconcile.StatusPlanReported {
		t.Fatalf("expected plan_reported, got %s", report.Status)
	}
	if len(report.Missing) != 1 || report.Missing[0].ID != "m1" {
		t.Fatalf("expected plan listing m1, got %#v", report.Missing)
	}
	if len(del.calls) != 0 {
		t.Fatalf("dry run must issue zero deletes, saw %d", len(del.calls))
	}
}

func TestRunConfirmationDeclined(t *testing.T) {
	records := []catalog.Record{
		record("m1", "movie", "Alien", "/media/alien.mkv"),
		record("m2", "movie", "Brazil", "/media/brazil.mkv"),
	}
	src := &fakeSource{records: records}
	del := &fakeDeleter{}
	confirmed := 0

	report, err := newRunner(src, del, &fakeChecker{}, reconcile.Options{
		Confirm: func(r *reconcile.Report) bool {
			confirmed++
			if len(r.Missing) != 2 {
				t.Fatalf("confirm saw %d missing, want 2", len(r.Missing))
			}
			return false
		},
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if confirmed != 1 {
		t.Fatalf("expected exactly one confirmation, got %d", confirmed)
	}
	if report.Status != reconcile.StatusAborted {
		t.Fatalf("expected aborted, got %s", report.Status)
	}
	if len(del.calls) != 0 {
		t.Fatalf("declined confirmation must issue zero deletes, saw %d", len(del.calls))
	}
}

func TestRunNilConfirmAborts(t *testing.T) {
	src := &fakeSource{records: []catalog.Record{
		record("m1", "movie", "Alien", "/media/alien.mkv"),
	}}
	del := &fakeDeleter{}

	report, err := newRunner(src, del, &fakeChecker{}, reconcile.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Status != reconcile.StatusAborted || len(del.calls) != 0 {
		t.Fatalf("nil confirm must abort with zero deletes, got %+v calls=%d", report, len(del.calls))
	}
}

func TestRunConfirmedApply(t *testing.T) {
	records := []catalog.Record{
		record("m1", "movie", "Alien", "/media/alien.mkv"),
		record("m2", "movie", "Brazil", "/media/brazil.mkv"),
		record("m3", "movie", "Crash", "/media/crash.mkv"),
	}
	src := &fakeSource{records: records}
	del := &fakeDeleter{failing: map[string]bool{"m2": true}}
	chk := &fakeChecker{present: map[string]bool{"/media/alien.mkv": true}}

	report, err := newRunner(src, del, chk, reconcile.Options{
		Confirm: func(*reconcile.Report) bool { return true },
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Status != reconcile.StatusApplied {
		t.Fatalf("expected applied, got %s", report.Status)
	}
	if report.Found != 1 {
		t.Fatalf("expected foundCount 1, got %d", report.Found)
	}
	if report.Attempted() != 2 || report.Succeeded() != 1 || report.Failed() != 1 {
		t.Fatalf("unexpected summary: attempted=%d succeeded=%d failed=%d",
			report.Attempted(), report.Succeeded(), report.Failed())
	}
}

func TestRunStoreUnreadableShortCircuits(t *testing.T) {
	readErr := fmt.Errorf("%w: file is not a database", catalog.ErrStoreUnreadable)
	src := &fakeSource{err: readErr}
	del := &fakeDeleter{}
	checks := 0
	chk := checkerFunc(func(string) bool { checks++; return true })

	report, err := newRunner(src, del, chk, reconcile.Options{}).Run(context.Background())
	if !errors.Is(err, catalog.ErrStoreUnreadable) {
		t.Fatalf("expected ErrStoreUnreadable, got %v", err)
	}
	if report != nil {
		t.Fatal("expected nil report on fatal read error")
	}
	if checks != 0 || len(del.calls) != 0 {
		t.Fatalf("no classification or mutation may happen after a fatal read, checks=%d deletes=%d", checks, len(del.calls))
	}
}

type checkerFunc func(string) bool

func (f checkerFunc) Exists(path string) bool { return f(path) }
