package textfile

import (
	"fmt"
	"io"
	"os"
	"sync"

	"lesiw.io/prefix"
)

var (
	// Trace receives one line for every file this package modifies.
	Trace = io.Discard

	// StderrTrace writes trace lines to standard error, like set -x.
	StderrTrace = prefix.NewWriter("+ ", stderr)

	stderr io.Writer = os.Stderr

	traceMu sync.Mutex
)

func tracef(format string, args ...any) {
	traceMu.Lock()
	defer traceMu.Unlock()
	_, _ = fmt.Fprintf(Trace, format+"\n", args...)
}
