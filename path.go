package textfile

import (
	"slices"
	"strings"

	"lesiw.io/fs/path"
)

// Split returns the components of p. Both '/' and '\' separate components,
// and empty components are dropped, so "/a//b\\c/" splits into a, b, c.
func Split(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// IsDescendantOf reports whether p lies strictly below ancestor.
//
// Only components are compared, case-sensitively. Whether either path is
// absolute is ignored, and a path is not a descendant of itself.
func IsDescendantOf(p, ancestor string) bool {
	pc, ac := Split(p), Split(ancestor)
	return len(pc) > len(ac) && slices.Equal(pc[:len(ac)], ac)
}

// RelFromAncestor returns the path from ancestor to p, joined with '/'.
// If p is not a descendant of ancestor, the error matches
// [ErrNotDescendant].
func RelFromAncestor(p, ancestor string) (string, error) {
	if !IsDescendantOf(p, ancestor) {
		return "", &ArgError{
			Op:  "rel",
			Arg: p,
			Err: ErrNotDescendant,
		}
	}
	return path.Join(Split(p)[len(Split(ancestor)):]...), nil
}
