package textfile

import (
	"bytes"
	"context"
	"errors"
	"io"

	"lesiw.io/fs"
)

// UTF8BOM is the UTF-8 byte order mark, EF BB BF.
const UTF8BOM = "\xEF\xBB\xBF"

// BOM is the result of inspecting the start of a stream for a UTF-8 byte
// order mark.
type BOM uint8

const (
	// BOMIndeterminate means there were no bytes to inspect.
	// It is not the same as BOMAbsent: an empty file says nothing about
	// the convention it should be written with.
	BOMIndeterminate BOM = iota

	// BOMAbsent means the stream does not start with [UTF8BOM].
	// This includes streams shorter than the mark.
	BOMAbsent

	// BOMPresent means the stream starts with [UTF8BOM].
	BOMPresent
)

func (b BOM) String() string {
	switch b {
	case BOMAbsent:
		return "absent"
	case BOMPresent:
		return "present"
	default:
		return "indeterminate"
	}
}

// DetectBOM reads at most three bytes from r and classifies them.
func DetectBOM(r io.Reader) (BOM, error) {
	if r == nil {
		return BOMIndeterminate, nilArg("detectbom", "reader")
	}
	var buf [len(UTF8BOM)]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return BOMIndeterminate, err
	}
	return classifyBOM(buf[:n]), nil
}

// HasBOM reports whether r starts with [UTF8BOM].
// An empty stream has no BOM.
func HasBOM(r io.Reader) (bool, error) {
	b, err := DetectBOM(r)
	return b == BOMPresent, err
}

// DetectFileBOM classifies the start of the named file.
// A file that does not exist is BOMIndeterminate.
func DetectFileBOM(
	ctx context.Context, fsys fs.FS, name string,
) (b BOM, err error) {
	if err = checkName("detectbom", fsys, name); err != nil {
		return
	}
	rc, err := openExisting(ctx, fsys, name)
	if rc == nil {
		return BOMIndeterminate, err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()
	return DetectBOM(rc)
}

// FileHasBOM reports whether the named file starts with [UTF8BOM].
func FileHasBOM(
	ctx context.Context, fsys fs.FS, name string,
) (bool, error) {
	b, err := DetectFileBOM(ctx, fsys, name)
	return b == BOMPresent, err
}

func classifyBOM(head []byte) BOM {
	switch {
	case len(head) == 0:
		return BOMIndeterminate
	case bytes.HasPrefix(head, []byte(UTF8BOM)):
		return BOMPresent
	default:
		return BOMAbsent
	}
}
