package textfile_test

import (
	"errors"
	"runtime"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/textfile"
)

func TestLineEndingString(t *testing.T) {
	tests := []struct {
		le         textfile.LineEnding
		str, named string
	}{
		{textfile.NoEnding, "", "none"},
		{textfile.CR, "\r", "cr"},
		{textfile.LF, "\n", "lf"},
		{textfile.CRLF, "\r\n", "crlf"},
	}
	for _, tt := range tests {
		if got := tt.le.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.le.Name(); got != tt.named {
			t.Errorf("Name() = %q, want %q", got, tt.named)
		}
	}
}

func TestNative(t *testing.T) {
	want := textfile.LF
	if runtime.GOOS == "windows" {
		want = textfile.CRLF
	}
	if got := textfile.Native(); got != want {
		t.Errorf("Native() = %v, want %v", got.Name(), want.Name())
	}
}

func TestParseLineEnding(t *testing.T) {
	tests := []struct {
		in   string
		want textfile.LineEnding
		err  bool
	}{
		{in: "cr", want: textfile.CR},
		{in: "LF", want: textfile.LF},
		{in: " crlf ", want: textfile.CRLF},
		{in: "native", want: textfile.Native()},
		{in: "none", err: true},
		{in: "", err: true},
		{in: "\\r\\n", err: true},
	}
	for _, tt := range tests {
		got, err := textfile.ParseLineEnding(tt.in)
		if tt.err {
			if !errors.Is(err, textfile.ErrInvalidValue) {
				t.Errorf("ParseLineEnding(%q) err = %v, want ErrInvalidValue",
					tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLineEnding(%q) err: %v", tt.in, err)
		} else if got != tt.want {
			t.Errorf("ParseLineEnding(%q) = %v, want %v",
				tt.in, got.Name(), tt.want.Name())
		}
	}
}

func TestLineEndingsAll(t *testing.T) {
	var set textfile.LineEndings
	if got := set.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
	set, err := textfile.DetectLineEndings(readerOf("x\r\ny\rz"))
	if err != nil {
		t.Fatalf("DetectLineEndings() err: %v", err)
	}
	got := slices.Collect(set.All())
	want := []textfile.LineEnding{textfile.CR, textfile.CRLF}
	if !cmp.Equal(got, want) {
		t.Errorf("All() -want +got\n%s", cmp.Diff(want, got))
	}
	if set.Has(textfile.LF) || set.Has(textfile.NoEnding) {
		t.Errorf("Has() reports members not in %v", set)
	}
	if got, want := set.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}
