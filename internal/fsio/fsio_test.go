package fsio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteBytesCreatesParentsAndCleansTemp(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "out.csv")

	if err := WriteBytes(path, []byte("v1,001\n")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v1,001\n" {
		t.Fatalf("unexpected content %q", data)
	}

	entries, err := os.ReadDir(filepath.Join(tmp, "a", "b"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".framepick-tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestListDirsAbsentDir(t *testing.T) {
	dirs, err := ListDirs(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 0 {
		t.Fatalf("expected empty list, got %v", dirs)
	}
}

func TestEnsureWritableDir(t *testing.T) {
	ok, msg := EnsureWritableDir(filepath.Join(t.TempDir(), "out"))
	if !ok {
		t.Fatalf("expected writable dir, got %s", msg)
	}
}
