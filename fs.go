package textfile

import (
	"context"
	"errors"
	"io"
	"strings"

	"lesiw.io/fs"
)

func checkName(op string, fsys fs.FS, name string) error {
	if fsys == nil {
		return nilArg(op, "fsys")
	}
	if strings.TrimSpace(name) == "" {
		return badArg(op, "name")
	}
	return nil
}

// exists reports whether name exists in fsys.
// Filesystems without Stat support are probed with Open.
func exists(ctx context.Context, fsys fs.FS, name string) (bool, error) {
	_, err := fs.Stat(ctx, fsys, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case !errors.Is(err, fs.ErrUnsupported):
		return false, err
	}
	rc, err := fs.Open(ctx, fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, rc.Close()
}

// openExisting opens name for reading.
// It returns a nil reader and a nil error if name does not exist.
func openExisting(
	ctx context.Context, fsys fs.FS, name string,
) (io.ReadCloser, error) {
	ok, err := exists(ctx, fsys, name)
	if err != nil || !ok {
		return nil, err
	}
	rc, err := fs.Open(ctx, fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil // Removed since Stat.
	} else if err != nil {
		return nil, err
	}
	return rc, nil
}
