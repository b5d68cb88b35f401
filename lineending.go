package textfile

import (
	"fmt"
	"iter"
	"runtime"
	"strings"
)

// LineEnding is a line terminator style.
//
// The zero value, NoEnding, is what detection reports when a stream contains
// no line endings. Inside a [Convention] it stands for [Native].
type LineEnding uint8

const (
	NoEnding LineEnding = iota
	CR                  // "\r", classic Mac OS
	LF                  // "\n", Unix
	CRLF                // "\r\n", Windows
)

// Native returns the line ending of the host platform.
func Native() LineEnding {
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}

// String returns the literal terminator sequence.
// NoEnding returns the empty string.
func (le LineEnding) String() string {
	switch le {
	case CR:
		return "\r"
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	default:
		return ""
	}
}

// Name returns a short lowercase name: "cr", "lf", "crlf" or "none".
func (le LineEnding) Name() string {
	switch le {
	case CR:
		return "cr"
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	default:
		return "none"
	}
}

func (le LineEnding) orNative() LineEnding {
	if le == NoEnding {
		return Native()
	}
	return le
}

// ParseLineEnding parses a name as returned by [LineEnding.Name].
// The special name "native" resolves to [Native].
// Matching is case-insensitive.
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cr":
		return CR, nil
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "native":
		return Native(), nil
	}
	return NoEnding, fmt.Errorf("%w: line ending %q", ErrInvalidValue, s)
}

// LineEndings is a set of line endings.
type LineEndings uint8

func bitOf(le LineEnding) LineEndings {
	if le == NoEnding || le > CRLF {
		return 0
	}
	return LineEndings(1) << (le - 1)
}

// Has reports whether le is in the set.
func (s LineEndings) Has(le LineEnding) bool {
	return s&bitOf(le) != 0
}

// Len returns the number of line endings in the set.
func (s LineEndings) Len() (n int) {
	for range s.All() {
		n++
	}
	return
}

// All yields the members of the set in the order CR, LF, CRLF.
func (s LineEndings) All() iter.Seq[LineEnding] {
	return func(yield func(LineEnding) bool) {
		for _, le := range []LineEnding{CR, LF, CRLF} {
			if s.Has(le) && !yield(le) {
				return
			}
		}
	}
}

// String returns the member names joined with "+", or "none".
func (s LineEndings) String() string {
	var names []string
	for le := range s.All() {
		names = append(names, le.Name())
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
