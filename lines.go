package textfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"iter"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"lesiw.io/fs"
)

const maxLineSize = 1 << 30

// ScanLines is a split function for a [bufio.Scanner] that returns each
// line of text without its line ending. CR, LF and CRLF all end a line.
// The last line is returned even if it has no line ending.
func ScanLines(
	data []byte, atEOF bool,
) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		switch {
		case data[i] == '\n':
			return i + 1, data[:i], nil
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A CR at the end of the buffer may be the start of a CRLF.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Lines yields the lines of r one at a time, as split by [ScanLines].
// A read error is yielded once, with an empty line, and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if r == nil {
			yield("", nilArg("lines", "reader"))
			return
		}
		sc := bufio.NewScanner(r)
		sc.Buffer(nil, maxLineSize)
		sc.Split(ScanLines)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

// ReadFileLines returns all lines of the named file.
// A leading byte order mark is not part of the first line.
func ReadFileLines(
	ctx context.Context, fsys fs.FS, name string,
) ([]string, error) {
	if err := checkName("readlines", fsys, name); err != nil {
		return nil, err
	}
	rc, err := fs.Open(ctx, fsys, name)
	if err != nil {
		return nil, err
	}
	return readLines(rc)
}

func readLines(rc io.ReadCloser) (lines []string, err error) {
	defer func() { err = errors.Join(err, rc.Close()) }()
	r := transform.NewReader(rc, unicode.UTF8BOM.NewDecoder())
	for line, lerr := range Lines(r) {
		if lerr != nil {
			return nil, lerr
		}
		lines = append(lines, line)
	}
	return lines, nil
}
