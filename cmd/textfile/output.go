package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printer writes one report line per file. It is safe for concurrent use.
type printer struct {
	mu sync.Mutex
	w  io.Writer

	name  *color.Color
	value *color.Color
	warn  *color.Color
}

func newPrinter(w io.Writer, mode string) (*printer, error) {
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
	case "auto":
		on = isTerminal(w)
	default:
		return nil, fmt.Errorf("bad color mode %q: want auto, on or off", mode)
	}
	p := &printer{
		w:     w,
		name:  color.New(color.Bold),
		value: color.New(color.FgCyan),
		warn:  color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.name, p.value, p.warn} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// report prints "name: value". A warning is highlighted.
func (p *printer) report(name, value string, warning bool) {
	c := p.value
	if warning {
		c = p.warn
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.name.Sprint(name), c.Sprint(value))
}

func (p *printer) raw(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.w.Write(b)
	return err
}
