package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vcxgen/vcxgen/internal/discovery"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatal(err)
		}
	})
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// source\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFind_SortedAndNormalized(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "vendor/std/b.c", "vendor/std/a.c", "vendor/std/notes.txt")
	chdir(t, tmpDir)

	files, err := discovery.Find("vendor/std", "*.c", discovery.Options{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{`vendor\std\a.c`, `vendor\std\b.c`}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFind_MissingBaseIsEmpty(t *testing.T) {
	chdir(t, t.TempDir())

	files, err := discovery.Find("vendor/does-not-exist", "*.c", discovery.Options{})
	if err != nil {
		t.Fatalf("missing base should not error, got: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("missing base should yield no files, got %v", files)
	}
}

func TestFind_FlatSkipsSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "uv/core.c", "uv/win/tcp.c")
	chdir(t, tmpDir)

	files, err := discovery.Find("uv", "*.c", discovery.Options{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(files) != 1 || files[0] != `uv\core.c` {
		t.Errorf("flat find should match direct children only, got %v", files)
	}
}

func TestFind_Recursive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "uv/core.c", "uv/win/tcp.c", "uv/win/pipe.c")
	chdir(t, tmpDir)

	files, err := discovery.Find("uv", "*.c", discovery.Options{Recurse: true})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{`uv\core.c`, `uv\win\pipe.c`, `uv\win\tcp.c`}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFind_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmpDir)

	files, err := discovery.Find("empty", "*.c", discovery.Options{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("empty directory should yield no files, got %v", files)
	}
}

func TestFind_BaseIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "single.c")
	chdir(t, tmpDir)

	if _, err := discovery.Find("single.c", "*.c", discovery.Options{}); err == nil {
		t.Error("expected error when base is a file")
	}
}

func TestFind_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "std/z.c", "std/m.c", "std/a.c")
	chdir(t, tmpDir)

	first, err := discovery.Find("std", "*.c", discovery.Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := discovery.Find("std", "*.c", discovery.Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs disagree: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("runs disagree at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
