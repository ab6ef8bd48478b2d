package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"mediasweep/internal/catalog"
	"mediasweep/internal/testsupport"
)

type cliEnv struct {
	base       string
	configPath string
	dbPath     string
	mediaDir   string
	backupDir  string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliEnv{
		base:       base,
		configPath: filepath.Join(base, "config.toml"),
		dbPath:     filepath.Join(base, "library.db"),
		mediaDir:   filepath.Join(base, "media"),
		backupDir:  filepath.Join(base, "backups"),
	}

	body := fmt.Sprintf(`
[paths]
catalog_db = %q
log_dir = %q
backup_dir = %q

[reconcile]
concurrency = 2
`, env.dbPath, filepath.Join(base, "logs"), env.backupDir)
	if err := os.WriteFile(env.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

// seedLibrary inserts three eligible records and creates backing files for
// all but "m2".
func (e *cliEnv) seedLibrary(t *testing.T) {
	t.Helper()

	alien := filepath.Join(e.mediaDir, "alien.mkv")
	pilot := filepath.Join(e.mediaDir, "pilot.mkv")
	testsupport.WriteFile(t, alien)
	testsupport.WriteFile(t, pilot)

	testsupport.SeedCatalog(t, e.dbPath,
		catalog.Record{ID: "m1", Type: "movie", Name: "Alien", Path: alien},
		catalog.Record{ID: "m2", Type: "movie", Name: "Brazil", Path: filepath.Join(e.mediaDir, "brazil.mkv")},
		catalog.Record{ID: "e1", Type: "tv_episode", Name: "Pilot", Path: pilot},
	)
}

// writeBrazil creates the file that seedLibrary deliberately left missing,
// turning the fixture into an all-present catalog.
func (e *cliEnv) writeBrazil(t *testing.T) {
	t.Helper()
	testsupport.WriteFile(t, filepath.Join(e.mediaDir, "brazil.mkv"))
}

// seedEmpty creates the items table with no rows.
func (e *cliEnv) seedEmpty(t *testing.T) {
	t.Helper()
	testsupport.SeedCatalog(t, e.dbPath)
}

func (e *cliEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(bytes.NewBufferString(stdin))
	} else {
		cmd.SetIn(bytes.NewBuffer(nil))
	}
	cmd.SetArgs(append(args, "--config", e.configPath))
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliEnv) eligibleIDs(t *testing.T) []string {
	t.Helper()

	store, err := catalog.Open(e.dbPath, "")
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer store.Close()

	records, err := store.ReadEligible(context.Background())
	if err != nil {
		t.Fatalf("read eligible: %v", err)
	}
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}

func (e *cliEnv) backupCount(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir(e.backupDir)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	return len(entries)
}
