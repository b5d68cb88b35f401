package textfile_test

import (
	"io"
	"strings"
	"testing"

	"lesiw.io/fs"
	"lesiw.io/fs/memfs"
)

func newFS(t *testing.T, files map[string]string) fs.FS {
	t.Helper()
	fsys := memfs.New()
	for name, content := range files {
		putFile(t, fsys, name, content)
	}
	return fsys
}

func putFile(t *testing.T, fsys fs.FS, name, content string) {
	t.Helper()
	w, err := fs.Create(t.Context(), fsys, name)
	if err != nil {
		t.Fatalf("fs.Create(%q) err: %v", name, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatalf("write %q err: %v", name, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close %q err: %v", name, err)
	}
}

func getFile(t *testing.T, fsys fs.FS, name string) string {
	t.Helper()
	buf, err := fs.ReadFile(t.Context(), fsys, name)
	if err != nil {
		t.Fatalf("fs.ReadFile(%q) err: %v", name, err)
	}
	return string(buf)
}

func readerOf(s string) io.Reader { return strings.NewReader(s) }
