package cli

import (
	"fmt"

	"github.com/alimgiray/repostats/internal/repositories"
	"github.com/alimgiray/repostats/internal/services"
	"github.com/spf13/cobra"
)

func newExportCommand(opts *Options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the current table snapshot into an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := openStore(opts.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			tables, err := services.LoadTables(store)
			if err != nil {
				return err
			}

			workbook := repositories.NewWorkbookRepository(out)
			if err := workbook.Save(tables); err != nil {
				return fmt.Errorf("writing workbook %s: %w", out, err)
			}

			fmt.Fprintf(opts.out, "Exported %s tables to %s\n", store.Name(), workbook.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "repostats.xlsx", "Path of the workbook to write")

	return cmd
}
