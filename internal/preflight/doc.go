// Package preflight provides the proceed/abort checks that run before a
// reconciliation pass touches anything.
//
// Each check is independent of the engine and returns a simple Result; the
// CLI decides whether a failure blocks the run (clean refuses to mutate when
// the media server still answers) or is merely displayed (scan shows results
// but always proceeds, since a dry run has no side effects).
package preflight
