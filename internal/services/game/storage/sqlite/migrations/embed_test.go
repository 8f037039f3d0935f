package migrations

import (
	"io/fs"
	"sort"
	"strings"
	"testing"
)

func TestPrizeMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(PrizesFS, PrizesRoot)
	if err != nil {
		t.Fatalf("read prize migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected prize migrations to be embedded")
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if files[0] != "001_prizes.sql" {
		t.Fatalf("expected first prize migration 001_prizes.sql, got %s", files[0])
	}
	for _, name := range files {
		if !strings.HasSuffix(name, ".sql") {
			t.Fatalf("unexpected non-sql migration %s", name)
		}
	}
}
