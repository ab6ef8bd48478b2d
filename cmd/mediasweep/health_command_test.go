package main

import (
	"strings"
	"testing"
)

func TestHealthReportsCatalogState(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	out, err := env.run(t, "", "health")
	if err != nil {
		t.Fatalf("health failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Exists:          yes",
		"Readable:        yes",
		"Items table:     yes",
		"Total items:     3",
		"Integrity check: yes",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("health output missing %q:\n%s", want, out)
		}
	}
}
