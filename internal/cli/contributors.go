package cli

import (
	"github.com/alimgiray/repostats/internal/services"
	"github.com/spf13/cobra"
)

func newContributorsCommand(opts *Options) *cobra.Command {
	var contributors string
	var years string
	var html bool

	cmd := &cobra.Command{
		Use:     "contributors",
		Aliases: []string{"contributor"},
		Short:   "Print per-contributor statistics for one or more years",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Argument problems are reported before any table is read
			names, err := services.ParseContributors(contributors)
			if err != nil {
				return err
			}
			parsedYears, err := services.ParseYears(years)
			if err != nil {
				return err
			}

			renderer, err := services.NewReportRenderer()
			if err != nil {
				return err
			}

			_, contributorStats, err := loadReporters(opts.cfg)
			if err != nil {
				return err
			}

			return renderer.RenderContributors(opts.out, outputFormat(html), contributorStats.ReportBatch(names, parsedYears))
		},
	}

	cmd.Flags().StringVarP(&contributors, "contributors", "c", "", "Contributors to report, separated by commas")
	cmd.Flags().StringVarP(&years, "years", "y", defaultYear(), "Years to report, separated by commas")
	cmd.Flags().BoolVar(&html, "html", false, "Output HTML")

	return cmd
}
