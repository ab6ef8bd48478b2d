package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultMetadataMarker excludes rows whose path points into the media
// server's metadata tree (artwork, trickplay files, theme clips). Those rows
// never back user media and must not enter a deletion plan.
const DefaultMetadataMarker = "/metadata/"

const itemsTable = "media_items"

// Store provides read and delete access to the catalog database.
type Store struct {
	db     *sql.DB
	path   string
	marker string

	malformed int
}

// Open connects to an existing catalog database. The file must already exist:
// SQLite would silently create an empty database otherwise, which for this
// tool always means a misconfigured path, not a fresh install.
func Open(dbPath, metadataMarker string) (*Store, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: database %s does not exist", ErrStoreUnreadable, dbPath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrStoreUnreadable, dbPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrStoreUnreadable, dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStoreUnreadable, dbPath, err)
	}

	// busy_timeout only; the media server owns journal mode and schema.
	if _, execErr := db.Exec("PRAGMA busy_timeout = 5000"); execErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply busy_timeout: %v", ErrStoreUnreadable, execErr)
	}

	if strings.TrimSpace(metadataMarker) == "" {
		metadataMarker = DefaultMetadataMarker
	}
	return &Store{db: db, path: dbPath, marker: metadataMarker}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// ReadEligible returns every reconciliation-eligible record ordered by
// (type, name, id). The predicate is fixed: non-empty path, path outside the
// metadata tree, type ending in an eligible suffix. Rows that fail to scan or
// carry empty key fields are skipped; MalformedRows reports how many.
func (s *Store) ReadEligible(ctx context.Context) ([]Record, error) {
	s.malformed = 0

	query := `SELECT id, type, name, path FROM ` + itemsTable + `
        WHERE path IS NOT NULL AND path != ''
          AND path NOT LIKE '%' || ? || '%'
          AND (type LIKE '%` + TypeSuffixEpisode + `' OR type LIKE '%` + TypeSuffixMovie + `')
        ORDER BY type, name, id`
	rows, err := s.db.QueryContext(ctx, query, s.marker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, ok := scanRecord(rows)
		if !ok {
			s.malformed++
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	return records, nil
}

// MalformedRows reports how many rows the last ReadEligible call skipped.
func (s *Store) MalformedRows() int {
	return s.malformed
}

// Delete removes a single catalog row by identifier and reports whether a row
// was actually removed. The caller decides what a zero-row delete means.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+itemsTable+` WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete record %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// CheckHealth returns diagnostic information about the catalog database.
func (s *Store) CheckHealth(ctx context.Context) (Health, error) {
	health := Health{DBPath: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat catalog database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("catalog database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	if err := s.db.PingContext(ctx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping catalog database: %w", err)
	}
	health.DatabaseReadable = true

	var tableName string
	row := s.db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, itemsTable)
	if err := row.Scan(&tableName); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			health.Error = err.Error()
			return health, fmt.Errorf("query table info: %w", err)
		}
	} else {
		health.TableExists = true
	}

	if health.TableExists {
		row = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+itemsTable)
		if err := row.Scan(&health.TotalItems); err != nil {
			health.Error = err.Error()
			return health, fmt.Errorf("count catalog items: %w", err)
		}
	}

	var integrity string
	row = s.db.QueryRowContext(ctx, "PRAGMA integrity_check")
	if err := row.Scan(&integrity); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = strings.EqualFold(integrity, "ok")

	return health, nil
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (Record, bool) {
	var id, typeTag, name, path sql.NullString
	if err := scanner.Scan(&id, &typeTag, &name, &path); err != nil {
		return Record{}, false
	}
	record := Record{
		ID:   strings.TrimSpace(id.String),
		Type: strings.TrimSpace(typeTag.String),
		Name: name.String,
		Path: path.String,
	}
	if record.ID == "" || record.Type == "" || strings.TrimSpace(record.Path) == "" {
		return Record{}, false
	}
	return record, true
}
