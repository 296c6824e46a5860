package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectionAlbumStampFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "collection", "create", "United States", "--system", "scott")
	requireContains(t, out, "Created collection 1")

	out = mustRunCLI(t, env, "album", "create", "1", "Airmail", "--country", "USA",
		"--year-start", "1918", "--year-end", "1939")
	requireContains(t, out, "Created album 1")

	mustRunCLI(t, env, "stamp", "add", "1", "C3", "--year", "1918", "--denomination", "24c")
	mustRunCLI(t, env, "stamp", "add", "1", "C1", "--year", "1918")
	mustRunCLI(t, env, "stamp", "add", "1", "C10", "--status", "wanted")

	// Natural catalog order, not lexicographic: C1, C3, C10.
	out = mustRunCLI(t, env, "stamp", "list", "--album", "1")
	c1 := strings.Index(out, "C1 ")
	c3 := strings.Index(out, "C3")
	c10 := strings.Index(out, "C10")
	if c1 == -1 || c3 == -1 || c10 == -1 || !(c1 < c3 && c3 < c10) {
		t.Fatalf("stamps not in natural order:\n%s", out)
	}

	out = mustRunCLI(t, env, "stamp", "list", "--album", "1", "--status", "wanted")
	requireContains(t, out, "C10")
	if strings.Contains(out, "C3") {
		t.Fatalf("status filter leaked owned stamps:\n%s", out)
	}

	out = mustRunCLI(t, env, "stamp", "status", "3", "owned")
	requireContains(t, out, "now owned")

	out = mustRunCLI(t, env, "collection", "delete", "1", "--yes")
	requireContains(t, out, "Deleted collection 1")

	out = mustRunCLI(t, env, "collection", "list")
	requireContains(t, out, "No collections")
}

func TestDeleteAbortsWithoutConsent(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "collection", "create", "US")
	out, _, err := runCLI(t, []string{"collection", "delete", "1"}, env.configPath, "n\n")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	requireContains(t, out, "Aborted")

	out = mustRunCLI(t, env, "collection", "list")
	requireContains(t, out, "US")
}

func TestReportGapsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "collection", "create", "US")
	mustRunCLI(t, env, "album", "create", "1", "Classics")
	for _, number := range []string{"1", "2", "5"} {
		mustRunCLI(t, env, "stamp", "add", "1", number)
	}
	mustRunCLI(t, env, "stamp", "add", "1", "3", "--status", "wanted")

	out := mustRunCLI(t, env, "report", "gaps", "--collection", "1")
	requireContains(t, out, "#4")
	requireContains(t, out, "Totals: 3 owned, 1 wanted, 1 missing")

	out = mustRunCLI(t, env, "report", "gaps", "--album", "1", "--json")
	requireContains(t, out, `"compressed_ranges"`)

	if _, _, err := runCLI(t, []string{"report", "gaps"}, env.configPath, ""); err == nil {
		t.Fatal("expected error without a scope")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "collection", "create", "US")
	mustRunCLI(t, env, "album", "create", "1", "Classics")
	mustRunCLI(t, env, "stamp", "add", "1", "C5", "--country", "USA", "--year", "1930")
	mustRunCLI(t, env, "stamp", "add", "1", "C1", "--status", "wanted")

	target := filepath.Join(env.baseDir, "out.csv")
	out := mustRunCLI(t, env, "export", "--album", "1", "--output", target)
	requireContains(t, out, "Exported 2 stamps")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), "C5")

	mustRunCLI(t, env, "album", "create", "1", "Copy")
	out = mustRunCLI(t, env, "import", target, "--album", "2")
	requireContains(t, out, "Imported 2 stamps")

	out = mustRunCLI(t, env, "stamp", "list", "--album", "2")
	requireContains(t, out, "C1")
	requireContains(t, out, "C5")
}

func TestBackupCreateRestoreCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "collection", "create", "US")
	mustRunCLI(t, env, "album", "create", "1", "Classics")
	mustRunCLI(t, env, "stamp", "add", "1", "1")

	target := filepath.Join(env.baseDir, "snap.json")
	out := mustRunCLI(t, env, "backup", "create", "--output", target)
	requireContains(t, out, "written to "+target)

	out = mustRunCLI(t, env, "backup", "inspect", target)
	requireContains(t, out, "Collections: 1, stamps: 1")

	mustRunCLI(t, env, "stamp", "add", "1", "2")
	out = mustRunCLI(t, env, "backup", "restore", target, "--yes")
	requireContains(t, out, "Restored snapshot")

	out = mustRunCLI(t, env, "db", "stats")
	lines := strings.Split(out, "\n")
	found := false
	for _, line := range lines {
		if strings.Contains(line, "total") && strings.Contains(line, "1") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected total of 1 after restore:\n%s", out)
	}
}
