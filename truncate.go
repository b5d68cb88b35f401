package textfile

import (
	"bytes"
	"context"
	"errors"
	"io"

	"lesiw.io/fs"
)

// File is an open file that can be read, written, repositioned and resized.
// *os.File implements File.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
}

// TruncateFront removes the first n bytes of the named file, shifting the
// rest of its content to the start.
//
// A count of zero does nothing. A count past the end of the file leaves the
// file empty. The file must exist: truncating a missing file returns an
// error matching [ErrNoFile].
//
// The remainder of the file is held in memory while it is written back.
func TruncateFront(
	ctx context.Context, fsys fs.FS, name string, n int64,
) error {
	if err := checkName("truncate-front", fsys, name); err != nil {
		return err
	}
	if n < 0 {
		return badArg("truncate-front", "n")
	}
	if n == 0 {
		return nil
	}
	rc, err := openExisting(ctx, fsys, name)
	if err != nil {
		return err
	} else if rc == nil {
		return noFile("truncate-front", name)
	}
	var tail bytes.Buffer
	err = skip(rc, n)
	if err == nil {
		_, err = tail.ReadFrom(rc)
	}
	if err = errors.Join(err, rc.Close()); err != nil {
		return err
	}
	if err = replay(ctx, fsys, name, &tail); err != nil {
		return err
	}
	tracef("truncate-front %s %d", name, n)
	return nil
}

// TruncateFrontFile removes the first n bytes of f through a single handle:
// it reads everything after offset n, rewinds, resizes f to the length of
// that remainder and writes it back from the start.
//
// On return the offset of f is at its new end.
func TruncateFrontFile(f File, n int64) error {
	if f == nil {
		return nilArg("truncate-front", "file")
	}
	if n < 0 {
		return badArg("truncate-front", "n")
	}
	if n == 0 {
		return nil
	}
	if _, err := f.Seek(n, io.SeekStart); err != nil {
		return err
	}
	var tail bytes.Buffer
	if _, err := tail.ReadFrom(f); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := f.Truncate(int64(tail.Len())); err != nil {
		return err
	}
	_, err := tail.WriteTo(f)
	return err
}

func skip(r io.Reader, n int64) error {
	if s, ok := r.(io.Seeker); ok {
		_, err := s.Seek(n, io.SeekStart)
		return err
	}
	_, err := io.CopyN(io.Discard, r, n)
	if err == io.EOF {
		return nil
	}
	return err
}

func replay(
	ctx context.Context, fsys fs.FS, name string, tail *bytes.Buffer,
) (err error) {
	if tail.Len() == 0 {
		err = fs.Truncate(ctx, fsys, name, 0)
		if !errors.Is(err, fs.ErrUnsupported) {
			return err
		}
	}
	w, err := fs.Create(ctx, fsys, name)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, w.Close()) }()
	_, err = tail.WriteTo(w)
	return err
}
