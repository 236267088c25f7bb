// Package cli defines the command-line interface for repostats.
package cli

import (
	"io"
	"strconv"
	"time"

	"github.com/alimgiray/repostats/pkg/config"
	"github.com/alimgiray/repostats/pkg/logger"
	"github.com/spf13/cobra"
)

// Options stores global CLI options shared between commands
type Options struct {
	cfg *config.Config
	out io.Writer
}

// Execute builds the root command, runs it with the provided args and returns any error
func Execute(cfg *config.Config, args []string, out io.Writer) error {
	opts := &Options{cfg: cfg, out: out}

	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "repostats",
		Short:         "repostats summarizes pull request and review activity of a repository",
		Long:          "repostats mines an issue-tracker mirror into comment, pull request, author and reviewer tables and reports yearly activity from them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.Init(opts.cfg.Log.Level)
			return opts.cfg.Validate()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfg.Source.MetaDir, "meta-dir", opts.cfg.Source.MetaDir, "Path to the issue-tracker mirror")
	flags.StringVar(&opts.cfg.Stats.Dir, "stats-dir", opts.cfg.Stats.Dir, "Directory of the CSV tables")
	flags.StringVar(&opts.cfg.Stats.Store, "store", opts.cfg.Stats.Store, "Table store to report from (csv, sqlite, xlsx)")
	flags.StringVar(&opts.cfg.Stats.DBPath, "db", opts.cfg.Stats.DBPath, "Path of the SQLite database")
	flags.StringVar(&opts.cfg.Stats.WorkbookPath, "workbook", opts.cfg.Stats.WorkbookPath, "Path of the XLSX workbook")
	flags.StringVar(&opts.cfg.Log.Level, "log-level", opts.cfg.Log.Level, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBuildCommand(opts),
		newGlobalCommand(opts),
		newContributorsCommand(opts),
		newExportCommand(opts),
		newServeCommand(opts),
	)

	return cmd
}

// defaultYear is last calendar year
func defaultYear() string {
	return strconv.Itoa(time.Now().Year() - 1)
}
