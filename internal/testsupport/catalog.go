package testsupport

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"mediasweep/internal/catalog"
	"mediasweep/internal/config"
)

// SeedCatalog creates a media_items table at dbPath and inserts the given
// records, standing in for a media server's library database.
func SeedCatalog(t testing.TB, dbPath string, records ...catalog.Record) {
	t.Helper()

	db := openSeedDB(t, dbPath)
	defer db.Close()

	for _, record := range records {
		if _, err := db.Exec(
			`INSERT INTO media_items (id, type, name, path) VALUES (?, ?, ?, ?)`,
			record.ID, record.Type, record.Name, record.Path,
		); err != nil {
			t.Fatalf("seed record %s: %v", record.ID, err)
		}
	}
}

// SeedRawRow inserts a row with arbitrary (possibly NULL) column values so
// tests can exercise malformed-row handling. Pass nil for NULL.
func SeedRawRow(t testing.TB, dbPath string, id, typeTag, name, path any) {
	t.Helper()

	db := openSeedDB(t, dbPath)
	defer db.Close()

	if _, err := db.Exec(
		`INSERT INTO media_items (id, type, name, path) VALUES (?, ?, ?, ?)`,
		id, typeTag, name, path,
	); err != nil {
		t.Fatalf("seed raw row: %v", err)
	}
}

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
// The database is created (possibly with zero rows) first so Open finds a file.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	SeedCatalog(t, cfg.Paths.CatalogDB)
	store, err := catalog.Open(cfg.Paths.CatalogDB, cfg.Reconcile.MetadataMarker)
	if err != nil {
		t.Fatalf("open catalog store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func openSeedDB(t testing.TB, dbPath string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS media_items (
        id TEXT PRIMARY KEY,
        type TEXT,
        name TEXT,
        path TEXT
    )`); err != nil {
		db.Close()
		t.Fatalf("create media_items: %v", err)
	}
	return db
}
