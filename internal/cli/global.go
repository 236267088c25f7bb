package cli

import (
	"github.com/alimgiray/repostats/internal/services"
	"github.com/spf13/cobra"
)

func newGlobalCommand(opts *Options) *cobra.Command {
	var years string
	var html bool

	cmd := &cobra.Command{
		Use:     "global",
		Aliases: []string{"globalstats"},
		Short:   "Print repository-wide statistics for one or more years",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedYears, err := services.ParseYears(years)
			if err != nil {
				return err
			}

			renderer, err := services.NewReportRenderer()
			if err != nil {
				return err
			}

			global, _, err := loadReporters(opts.cfg)
			if err != nil {
				return err
			}

			return renderer.RenderGlobal(opts.out, outputFormat(html), global.ReportYears(parsedYears))
		},
	}

	cmd.Flags().StringVarP(&years, "years", "y", defaultYear(), "Years to report, separated by commas")
	cmd.Flags().BoolVar(&html, "html", false, "Output HTML")

	return cmd
}

func outputFormat(html bool) string {
	if html {
		return services.FormatHTML
	}
	return services.FormatText
}
