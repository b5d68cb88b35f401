package textfile

import "io"

type scanState uint8

const (
	stateIdle      scanState = iota
	statePendingCR           // a CR was seen and may start a CRLF
)

// scanner recognizes CR, LF and CRLF in a byte stream.
//
// A CR is held back until the following byte, or the end of the stream,
// shows whether it starts a CRLF. Detection and normalization share this
// machine and differ only in what they do with its output.
type scanner struct{ state scanState }

// step advances the machine by one byte. It returns the line ending that b
// completes, if any, and whether b is ordinary text to be kept.
func (s *scanner) step(b byte) (le LineEnding, text bool) {
	switch s.state {
	case statePendingCR:
		switch b {
		case '\n':
			s.state = stateIdle
			return CRLF, false
		case '\r':
			return CR, false
		default:
			s.state = stateIdle
			return CR, true
		}
	default:
		switch b {
		case '\r':
			s.state = statePendingCR
			return NoEnding, false
		case '\n':
			return LF, false
		default:
			return NoEnding, true
		}
	}
}

// end flushes a CR held back at the end of the stream.
func (s *scanner) end() LineEnding {
	if s.state == statePendingCR {
		s.state = stateIdle
		return CR
	}
	return NoEnding
}

// byteReader returns r as an io.ByteReader without buffering ahead,
// so that no bytes past the point of decision are consumed from r.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &oneByteReader{r: r}
}

type oneByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (o *oneByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(o.r, o.buf[:]); err != nil {
		return 0, err
	}
	return o.buf[0], nil
}
