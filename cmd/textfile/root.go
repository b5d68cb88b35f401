package main

import (
	"github.com/spf13/cobra"
	"lesiw.io/fs"
	"lesiw.io/prefix"
	"lesiw.io/textfile"
)

type app struct {
	fsys fs.FS

	cfgPath string
	eol     string
	bom     bool
	jobs    int
	verbose bool
	color   string

	conv textfile.Convention
	out  *printer
}

func newRootCmd(fsys fs.FS) *cobra.Command {
	a := &app{fsys: fsys}
	cmd := &cobra.Command{
		Use:               "textfile",
		Short:             "Rewrite text files and keep their conventions",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "load defaults from a TOML `file`")
	f.StringVar(&a.eol, "eol", "native",
		"line ending for new or converted files (lf|cr|crlf|native)")
	f.BoolVar(&a.bom, "bom", false,
		"write a byte order mark to new or converted files")
	f.IntVarP(&a.jobs, "jobs", "j", 0, "files to process at once")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "trace writes to stderr")
	f.StringVar(&a.color, "color", "auto", "colorize output (auto|on|off)")

	cmd.AddCommand(
		a.detectCmd(),
		a.rewriteCmd(),
		a.appendCmd(),
		a.convertCmd(),
		a.truncateCmd(),
	)
	return cmd
}

// setup merges the config file with the flags that were set explicitly.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := defaultConfig()
	if a.cfgPath != "" {
		if err := cfg.load(a.cfgPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("eol") {
		cfg.EOL = a.eol
	}
	if flags.Changed("bom") {
		cfg.BOM = a.bom
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	conv, err := cfg.convention()
	if err != nil {
		return err
	}
	a.conv, a.jobs = conv, cfg.Jobs

	out, err := newPrinter(cmd.OutOrStdout(), a.color)
	if err != nil {
		return err
	}
	a.out = out

	if a.verbose {
		textfile.Trace = prefix.NewWriter("+ ", cmd.ErrOrStderr())
	}
	cmd.SetContext(textfile.WithDefaults(cmd.Context(), a.conv))
	return nil
}
