package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearCacheDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "ab")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{
		filepath.Join(dir, "top.json"),
		filepath.Join(sub, "one.json"),
		filepath.Join(sub, "two.json"),
	} {
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearCacheDir(dir)
	if err != nil {
		t.Fatalf("clearCacheDir: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	// The directory itself survives, its contents do not.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, found %d entries", len(entries))
	}
}

func TestClearCacheDirEmpty(t *testing.T) {
	count, err := clearCacheDir(t.TempDir())
	if err != nil {
		t.Fatalf("clearCacheDir: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
