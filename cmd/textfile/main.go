// Command textfile inspects and rewrites text files without changing their
// line endings or byte order marks.
//
// Usage:
//
//	textfile detect [--all] [--json] FILE...
//	textfile rewrite FILE < lines
//	textfile append FILE LINE...
//	textfile convert [--eol lf|cr|crlf|native] [--bom] FILE...
//	textfile truncate-front -n N FILE...
//
// Defaults for new files come from --eol and --bom, or from a TOML file
// given with --config:
//
//	eol = "crlf"
//	bom = true
//	jobs = 4
package main

import (
	"context"
	"os"

	"lesiw.io/fs/osfs"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd(osfs.New()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
