package cli

import (
	"fmt"

	"github.com/alimgiray/repostats/internal/repositories"
	"github.com/alimgiray/repostats/internal/services"
	"github.com/alimgiray/repostats/pkg/config"
	"github.com/spf13/cobra"
)

func newBuildCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"build-stats"},
		Short:   "Extract the statistics tables from the issue-tracker mirror",
		Long:    "Scans the mirror and overwrites the CSV tables. When the configured store is sqlite or xlsx it is rewritten as well.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg

			records := repositories.NewIssueRecordRepository(cfg.Source.MetaDir)
			extractor := services.NewExtractorService(records, cfg.Stats.CanonicalBranch)

			if cfg.Source.ManifestPath != "" {
				numbers, err := repositories.LoadIssueManifest(cfg.Source.ManifestPath)
				if err != nil {
					return fmt.Errorf("reading issue manifest: %w", err)
				}
				extractor.WithManifest(numbers)
			}

			stores := []services.TableStore{repositories.NewCSVTableRepository(cfg.Stats.Dir)}
			if cfg.Stats.Store != config.StoreCSV {
				store, closeStore, err := openStore(cfg)
				if err != nil {
					return err
				}
				defer closeStore()
				stores = append(stores, store)
			}

			result, err := services.NewBuildService(extractor, stores...).Build()
			if err != nil {
				return err
			}

			fmt.Fprintf(opts.out, "Built %d comments, %d pull requests, %d authors and %d reviewers (run %s)\n",
				len(result.Tables.Comments), len(result.Tables.PullRequests),
				len(result.Tables.Authors), len(result.Tables.Reviewers), result.RunID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.cfg.Stats.CanonicalBranch, "branch", opts.cfg.Stats.CanonicalBranch, "Base label of the canonical integration branch")
	cmd.Flags().StringVar(&opts.cfg.Source.ManifestPath, "manifest", opts.cfg.Source.ManifestPath, "File listing the exported issue numbers, one per line")

	return cmd
}
