package textfile_test

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/textfile"
)

func TestResolveConvention(t *testing.T) {
	native := textfile.Native()
	tests := []struct {
		name    string
		content *string
		def     textfile.Convention
		want    textfile.Convention
	}{{
		name: "missing file uses default",
		def:  textfile.Convention{LineEnding: textfile.CR, BOM: true},
		want: textfile.Convention{LineEnding: textfile.CR, BOM: true},
	}, {
		name: "missing file with zero default",
		want: textfile.Convention{LineEnding: native},
	}, {
		name:    "existing convention wins",
		content: ptr("\xEF\xBB\xBFa\r\nb\n"),
		def:     textfile.Convention{LineEnding: textfile.LF},
		want:    textfile.Convention{LineEnding: textfile.CRLF, BOM: true},
	}, {
		name:    "existing file without bom",
		content: ptr("a\rb"),
		def:     textfile.Convention{LineEnding: textfile.LF, BOM: true},
		want:    textfile.Convention{LineEnding: textfile.CR},
	}, {
		name:    "no line endings falls back",
		content: ptr("abc"),
		def:     textfile.Convention{LineEnding: textfile.CRLF, BOM: true},
		want:    textfile.Convention{LineEnding: textfile.CRLF},
	}, {
		name:    "empty file falls back",
		content: ptr(""),
		def:     textfile.Convention{LineEnding: textfile.CR, BOM: true},
		want:    textfile.Convention{LineEnding: textfile.CR, BOM: true},
	}, {
		name:    "bom only",
		content: ptr("\xEF\xBB\xBF"),
		def:     textfile.Convention{LineEnding: textfile.LF},
		want:    textfile.Convention{LineEnding: textfile.LF, BOM: true},
	}, {
		name:    "short file is not indeterminate",
		content: ptr("x"),
		def:     textfile.Convention{LineEnding: textfile.LF, BOM: true},
		want:    textfile.Convention{LineEnding: textfile.LF},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newFS(t, nil)
			if tt.content != nil {
				putFile(t, fsys, "file.txt", *tt.content)
			}
			got, err := textfile.ResolveConvention(
				t.Context(), fsys, "file.txt", tt.def,
			)
			if err != nil {
				t.Fatalf("ResolveConvention() err: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveConvention() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveConventionBadArgs(t *testing.T) {
	_, err := textfile.ResolveConvention(
		t.Context(), nil, "file.txt", textfile.Convention{},
	)
	if !errors.Is(err, textfile.ErrNilArgument) {
		t.Errorf("ResolveConvention(nil fsys) err = %v, want ErrNilArgument",
			err)
	}
}

func TestDefaults(t *testing.T) {
	var zero textfile.Convention
	if got := textfile.Defaults(context.Background()); got != zero {
		t.Errorf("Defaults() = %v, want zero Convention", got)
	}
	want := textfile.Convention{LineEnding: textfile.CRLF, BOM: true}
	ctx := textfile.WithDefaults(t.Context(), want)
	if got := textfile.Defaults(ctx); got != want {
		t.Errorf("Defaults() = %v, want %v", got, want)
	}
}

func TestConventionString(t *testing.T) {
	tests := []struct {
		conv textfile.Convention
		want string
	}{
		{textfile.Convention{}, "none"},
		{textfile.Convention{LineEnding: textfile.LF}, "lf"},
		{textfile.Convention{LineEnding: textfile.CRLF, BOM: true}, "crlf+bom"},
	}
	for _, tt := range tests {
		if got := tt.conv.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
