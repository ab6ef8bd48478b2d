package catalog

import "errors"

// ErrStoreUnreadable marks failures that prevent querying the catalog at all:
// missing database file, corrupt format, missing table, or a query the engine
// rejects. It is the only fatal error class in a reconciliation run; callers
// test for it with errors.Is and abort before classification.
var ErrStoreUnreadable = errors.New("catalog store unreadable")
