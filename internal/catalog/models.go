package catalog

import "strings"

// Eligible type suffixes. Media servers tag library rows with engine-specific
// type names ("tv_episode", "movie", "home_movie"); only file-backed episode
// and movie rows participate in reconciliation.
const (
	TypeSuffixEpisode = "episode"
	TypeSuffixMovie   = "movie"
)

// Record is one reconciliation-eligible catalog row. It is a transient,
// read-only copy: the database owns record identity and path data, and no
// Record outlives a single run.
type Record struct {
	ID   string
	Type string
	Name string
	Path string
}

// EligibleType reports whether a type tag belongs to the reconciliation set.
func EligibleType(value string) bool {
	return strings.HasSuffix(value, TypeSuffixEpisode) || strings.HasSuffix(value, TypeSuffixMovie)
}

// Health captures diagnostic information about the catalog database.
type Health struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TableExists      bool
	TotalItems       int
	IntegrityCheck   bool
	Error            string
}
