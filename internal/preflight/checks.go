package preflight

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const serverProbeTimeout = 5 * time.Second

// CheckServerStopped probes the media server and passes only when nobody
// answers. Reconciliation deletes rows out from under the server's caches,
// so a responding server -- any HTTP status counts as responding -- fails
// the check.
func CheckServerStopped(ctx context.Context, baseURL string) Result {
	const name = "Media server stopped"

	checkCtx, cancel := context.WithTimeout(ctx, serverProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, baseURL, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("invalid server url (%v)", err)}
	}

	client := &http.Client{Timeout: serverProbeTimeout}
	resp, err := client.Do(req)
	if err != nil {
		// Connection refused, no route, timeout: the server is down as far
		// as this catalog is concerned.
		return Result{Name: name, Passed: true, Detail: "no response (server appears stopped)"}
	}
	defer resp.Body.Close()

	return Result{Name: name, Detail: fmt.Sprintf("server responded with %d; stop it before reconciling", resp.StatusCode)}
}

// CheckCatalogFile verifies the catalog database exists, is a regular file,
// and is readable and writable.
func CheckCatalogFile(path string) Result {
	const name = "Catalog database"

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBackupDir verifies the backup directory is writable. A missing
// directory passes; the snapshot step creates it on demand.
func CheckBackupDir(path string) Result {
	const name = "Backup directory"

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}
