package textfile

import (
	"bufio"
	"context"
	"errors"
	"iter"
	"slices"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"lesiw.io/fs"
)

// Rewrite creates or replaces the named file with lines.
//
// If the file exists, its line ending and byte order mark are kept.
// Otherwise the defaults stored in ctx by [WithDefaults] are used, which are
// native line endings without a byte order mark unless set.
//
// Line endings inside each line are normalized to the file's line ending,
// and every line, including the last, is followed by exactly one.
// The file is truncated before lines is consumed. If writing fails, the file
// may be left truncated or partially written.
func Rewrite(
	ctx context.Context, fsys fs.FS, name string, lines iter.Seq[string],
) error {
	return RewriteWith(ctx, fsys, name, lines, Defaults(ctx))
}

// RewriteWith is like [Rewrite] but uses def as the convention for files
// that do not exist yet.
func RewriteWith(
	ctx context.Context, fsys fs.FS, name string,
	lines iter.Seq[string], def Convention,
) error {
	if err := checkName("rewrite", fsys, name); err != nil {
		return err
	}
	if lines == nil {
		return nilArg("rewrite", "lines")
	}
	conv, err := resolve(ctx, fsys, name, def)
	if err != nil {
		return err
	}
	return write(ctx, fsys, name, lines, conv)
}

// AppendLines adds lines to the end of the named file.
//
// The existing lines are read, the new ones are added after them and the
// whole file is rewritten as by [Rewrite], so the cost is proportional to
// the size of the file. A file that does not exist is created.
func AppendLines(
	ctx context.Context, fsys fs.FS, name string, lines ...string,
) error {
	if err := checkName("append", fsys, name); err != nil {
		return err
	}
	conv, err := resolve(ctx, fsys, name, Defaults(ctx))
	if err != nil {
		return err
	}
	rc, err := openExisting(ctx, fsys, name)
	if err != nil {
		return err
	}
	var old []string
	if rc != nil {
		if old, err = readLines(rc); err != nil {
			return err
		}
	}
	all := slices.Concat(old, lines)
	return write(ctx, fsys, name, slices.Values(all), conv)
}

// Convert rewrites the named file with conv, discarding the line ending and
// byte order mark it had before. NoEnding in conv means [Native].
// The file must exist.
func Convert(
	ctx context.Context, fsys fs.FS, name string, conv Convention,
) error {
	if err := checkName("convert", fsys, name); err != nil {
		return err
	}
	rc, err := openExisting(ctx, fsys, name)
	if err != nil {
		return err
	} else if rc == nil {
		return noFile("convert", name)
	}
	lines, err := readLines(rc)
	if err != nil {
		return err
	}
	return write(ctx, fsys, name, slices.Values(lines), conv.native())
}

func write(
	ctx context.Context, fsys fs.FS, name string,
	lines iter.Seq[string], conv Convention,
) (err error) {
	w, err := fs.Create(ctx, fsys, name)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, w.Close()) }()

	var enc encoding.Encoding = unicode.UTF8
	if conv.BOM {
		enc = unicode.UTF8BOM
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	bw := bufio.NewWriter(tw)
	eol := conv.LineEnding.String()
	for line := range lines {
		line = NormalizeLineEndings(line, conv.LineEnding)
		if _, err = bw.WriteString(line); err != nil {
			return err
		}
		if _, err = bw.WriteString(eol); err != nil {
			return err
		}
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tw.Close(); err != nil {
		return err
	}
	tracef("rewrite %s (%s)", name, conv)
	return nil
}
