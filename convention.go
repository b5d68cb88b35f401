package textfile

import (
	"bufio"
	"context"
	"errors"
	"io"

	"lesiw.io/fs"
)

// Convention describes how a text file is written.
//
// The zero Convention means native line endings without a byte order mark.
type Convention struct {
	LineEnding LineEnding
	BOM        bool
}

// String returns the line ending name, followed by "+bom" if BOM is set.
func (c Convention) String() string {
	s := c.LineEnding.Name()
	if c.BOM {
		s += "+bom"
	}
	return s
}

func (c Convention) native() Convention {
	c.LineEnding = c.LineEnding.orNative()
	return c
}

type defaultsKey struct{}

// WithDefaults returns a new context carrying c as the fallback convention
// for [Rewrite] and [AppendLines].
func WithDefaults(ctx context.Context, c Convention) context.Context {
	return context.WithValue(ctx, defaultsKey{}, c)
}

// Defaults returns the fallback convention stored in ctx.
// It returns the zero Convention if none was stored.
func Defaults(ctx context.Context) Convention {
	if c, ok := ctx.Value(defaultsKey{}).(Convention); ok {
		return c
	}
	return Convention{}
}

// ResolveConvention returns the convention to write the named file with.
//
// If the file exists, its first line ending and its byte order mark win.
// A file without line endings takes the line ending of def, and an empty
// file takes the BOM flag of def. If the file does not exist, def is used
// as is. NoEnding in def resolves to [Native].
func ResolveConvention(
	ctx context.Context, fsys fs.FS, name string, def Convention,
) (Convention, error) {
	if err := checkName("resolve", fsys, name); err != nil {
		return Convention{}, err
	}
	return resolve(ctx, fsys, name, def)
}

func resolve(
	ctx context.Context, fsys fs.FS, name string, def Convention,
) (conv Convention, err error) {
	conv = def.native()
	rc, err := openExisting(ctx, fsys, name)
	if rc == nil {
		return conv, err
	}
	defer func() {
		if err = errors.Join(err, rc.Close()); err != nil {
			conv = Convention{}
		}
	}()

	br := bufio.NewReader(rc)
	head, err := br.Peek(len(UTF8BOM))
	if err != nil && err != io.EOF {
		return
	}
	if b := classifyBOM(head); b != BOMIndeterminate {
		conv.BOM = b == BOMPresent
	}
	le, err := detectFirst(br)
	if err != nil {
		return
	}
	if le != NoEnding {
		conv.LineEnding = le
	}
	return conv, nil
}
