package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"lesiw.io/textfile"
)

type detection struct {
	File       string `json:"file"`
	LineEnding string `json:"eol"`
	BOM        string `json:"bom"`
	Mixed      bool   `json:"mixed,omitempty"`
}

func (a *app) detectCmd() *cobra.Command {
	var all, asJSON bool
	cmd := &cobra.Command{
		Use:   "detect [--all] [--json] FILE...",
		Short: "Print the line ending and byte order mark of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := unique(args)
			found := make([]detection, len(files))
			err := forEach(cmd.Context(), files, a.jobs,
				func(ctx context.Context, i int, name string) error {
					d, err := a.detect(ctx, name, all)
					found[i] = d
					return err
				},
			)
			if err != nil {
				return err
			}
			if asJSON {
				buf, err := json.MarshalIndent(found, "", "  ")
				if err != nil {
					return err
				}
				return a.out.raw(append(buf, '\n'))
			}
			for _, d := range found {
				a.out.report(d.File,
					fmt.Sprintf("%s, bom %s", d.LineEnding, d.BOM), d.Mixed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false,
		"report every line ending style, not just the first")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func (a *app) detect(
	ctx context.Context, name string, all bool,
) (d detection, err error) {
	d.File = name
	bom, err := textfile.DetectFileBOM(ctx, a.fsys, name)
	if err != nil {
		return d, err
	}
	d.BOM = bom.String()
	if all {
		set, err := textfile.DetectFileLineEndings(ctx, a.fsys, name)
		if err != nil {
			return d, err
		}
		d.LineEnding, d.Mixed = set.String(), set.Len() > 1
		return d, nil
	}
	le, err := textfile.DetectFileLineEnding(ctx, a.fsys, name)
	if err != nil {
		return d, err
	}
	d.LineEnding = le.Name()
	return d, nil
}
