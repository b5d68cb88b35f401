package textfile

import "strings"

// NormalizeLineEndings rewrites every CR, LF and CRLF in s to le.
// NoEnding is treated as [Native].
func NormalizeLineEndings(s string, le LineEnding) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var (
		sb  strings.Builder
		sc  scanner
		eol = le.orNative().String()
	)
	sb.Grow(len(s))
	for i := range len(s) {
		end, text := sc.step(s[i])
		if end != NoEnding {
			sb.WriteString(eol)
		}
		if text {
			sb.WriteByte(s[i])
		}
	}
	if sc.end() != NoEnding {
		sb.WriteString(eol)
	}
	return sb.String()
}
