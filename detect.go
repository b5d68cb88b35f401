package textfile

import (
	"bufio"
	"context"
	"errors"
	"io"

	"lesiw.io/fs"
)

// DetectLineEnding returns the first line ending in r, or NoEnding if r
// contains none.
//
// Reading stops as soon as the answer is known. A CR is only reported once
// the following byte is known not to be LF, so DetectLineEnding may read one
// byte past a lone CR. If r is not an [io.ByteReader] it is read one byte at
// a time.
func DetectLineEnding(r io.Reader) (LineEnding, error) {
	if r == nil {
		return NoEnding, nilArg("detect", "reader")
	}
	return detectFirst(byteReader(r))
}

// DetectLineEndings reads r to the end and returns every line ending style
// found in it.
func DetectLineEndings(r io.Reader) (LineEndings, error) {
	if r == nil {
		return 0, nilArg("detect", "reader")
	}
	return detectAll(byteReader(r))
}

// DetectFileLineEnding returns the first line ending in the named file.
// A file that does not exist is not an error: it has no line endings.
func DetectFileLineEnding(
	ctx context.Context, fsys fs.FS, name string,
) (le LineEnding, err error) {
	if err = checkName("detect", fsys, name); err != nil {
		return
	}
	rc, err := openExisting(ctx, fsys, name)
	if rc == nil {
		return NoEnding, err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()
	return detectFirst(bufio.NewReader(rc))
}

// DetectFileLineEndings returns every line ending style in the named file.
// A file that does not exist yields the empty set.
func DetectFileLineEndings(
	ctx context.Context, fsys fs.FS, name string,
) (set LineEndings, err error) {
	if err = checkName("detect", fsys, name); err != nil {
		return
	}
	rc, err := openExisting(ctx, fsys, name)
	if rc == nil {
		return 0, err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()
	return detectAll(bufio.NewReader(rc))
}

func detectFirst(br io.ByteReader) (LineEnding, error) {
	var s scanner
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return s.end(), nil
		} else if err != nil {
			return NoEnding, err
		}
		if le, _ := s.step(b); le != NoEnding {
			return le, nil
		}
	}
}

func detectAll(br io.ByteReader) (LineEndings, error) {
	var (
		s   scanner
		set LineEndings
	)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return set | bitOf(s.end()), nil
		} else if err != nil {
			return 0, err
		}
		le, _ := s.step(b)
		set |= bitOf(le)
	}
}
