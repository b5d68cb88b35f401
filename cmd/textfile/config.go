package main

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"lesiw.io/textfile"
)

type config struct {
	EOL  string `toml:"eol"`
	BOM  bool   `toml:"bom"`
	Jobs int    `toml:"jobs"`
}

func defaultConfig() config {
	return config{EOL: "native", Jobs: runtime.GOMAXPROCS(0)}
}

// load overlays the keys defined in the TOML file at path onto c.
func (c *config) load(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, keys[0].String())
	}
	if meta.IsDefined("jobs") && c.Jobs < 1 {
		return fmt.Errorf("%s: jobs must be at least 1", path)
	}
	return nil
}

func (c config) validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs %d", textfile.ErrInvalidValue, c.Jobs)
	}
	return nil
}

func (c config) convention() (textfile.Convention, error) {
	le, err := textfile.ParseLineEnding(c.EOL)
	if err != nil {
		return textfile.Convention{}, err
	}
	return textfile.Convention{LineEnding: le, BOM: c.BOM}, nil
}
