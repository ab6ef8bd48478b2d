// Package reconcile cross-references catalog records against the filesystem
// and applies the resulting deletion plan.
//
// A run is a fixed progression: read eligible records, classify each as found
// or missing, report, and -- only after the caller supplies an explicit
// confirmation -- delete the missing records one at a time. Classification
// fans out across a bounded worker pool because each existence check is
// independent and side-effect-free; mutation is strictly sequential so a
// failed delete is attributable to exactly one record and store load stays
// predictable.
//
// The deletion plan is a point-in-time decision. Apply never re-checks the
// filesystem: if a file reappears between classification and mutation, its
// record is still deleted. That race is accepted and documented rather than
// papered over with a second check that would only narrow, not close, the
// window.
package reconcile
