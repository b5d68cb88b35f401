package main

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"lesiw.io/fs"
	"lesiw.io/textfile"
)

func (a *app) rewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite FILE",
		Short: "Replace FILE with lines read from standard input",
		Long: "Replace FILE with lines read from standard input, keeping " +
			"the line ending and byte order mark FILE already has.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := transform.NewReader(
				cmd.InOrStdin(), unicode.UTF8BOM.NewDecoder(),
			)
			var readErr error
			lines := func(yield func(string) bool) {
				for line, err := range textfile.Lines(in) {
					if err != nil {
						readErr = err
						return
					}
					if !yield(line) {
						return
					}
				}
			}
			err := textfile.Rewrite(cmd.Context(), a.fsys, args[0], lines)
			return errors.Join(err, readErr)
		},
	}
}

func (a *app) appendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append FILE LINE...",
		Short: "Add lines to the end of FILE",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return textfile.AppendLines(
				cmd.Context(), a.fsys, args[0], args[1:]...,
			)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [--eol STYLE] [--bom] FILE...",
		Short: "Rewrite files with the line ending and BOM given by flags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEach(cmd.Context(), unique(args), a.jobs,
				func(ctx context.Context, _ int, name string) error {
					err := textfile.Convert(ctx, a.fsys, name, a.conv)
					if err != nil {
						return err
					}
					a.out.report(name, a.conv.String(), false)
					return nil
				},
			)
		},
	}
}

func (a *app) truncateCmd() *cobra.Command {
	var n int64
	cmd := &cobra.Command{
		Use:   "truncate-front -n N FILE...",
		Short: "Remove the first N bytes of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEach(cmd.Context(), unique(args), a.jobs,
				func(ctx context.Context, _ int, name string) error {
					removed, err := a.truncate(ctx, name, n)
					if err != nil {
						return err
					}
					a.out.report(name, "removed "+removed, false)
					return nil
				},
			)
		},
	}
	cmd.Flags().Int64VarP(&n, "bytes", "n", 0, "number of bytes to remove")
	return cmd
}

// truncate removes n bytes from the front of name and describes how much
// was actually removed.
func (a *app) truncate(
	ctx context.Context, name string, n int64,
) (string, error) {
	info, err := fs.Stat(ctx, a.fsys, name)
	if err != nil {
		return "", err
	}
	if err := textfile.TruncateFront(ctx, a.fsys, name, n); err != nil {
		return "", err
	}
	return humanize.Bytes(uint64(min(n, info.Size()))), nil
}
