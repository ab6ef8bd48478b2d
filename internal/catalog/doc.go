// Package catalog reads and mutates the media server's library database.
//
// The database belongs to the media server, not to mediasweep: the store
// never creates the file, never touches the schema, and never changes the
// journal mode. It exposes exactly the two statement shapes reconciliation
// needs -- the eligible-record read and the single-row delete -- so the
// engine can run against a fake store in tests.
//
// A database that cannot be queried at all (missing file, corrupt format,
// missing table) surfaces ErrStoreUnreadable and aborts the run before any
// classification. Individual rows that violate the expected shape are
// skipped so partial corruption never blocks reconciliation of well-formed
// rows.
package catalog
