package cli

import (
	"github.com/alimgiray/repostats/internal/repositories"
	"github.com/alimgiray/repostats/internal/services"
	"github.com/alimgiray/repostats/pkg/config"
	"github.com/alimgiray/repostats/pkg/database"
)

// openStore opens the table store selected in the configuration. The returned
// function releases whatever the store holds open.
func openStore(cfg *config.Config) (services.TableStore, func(), error) {
	switch cfg.Stats.Store {
	case config.StoreSQLite:
		db, err := database.Open(cfg.Stats.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLiteTableRepository(db), func() { db.Close() }, nil
	case config.StoreWorkbook:
		return repositories.NewWorkbookRepository(cfg.Stats.WorkbookPath), func() {}, nil
	default:
		return repositories.NewCSVTableRepository(cfg.Stats.Dir), func() {}, nil
	}
}

// loadReporters loads the configured snapshot and builds both reporters on it
func loadReporters(cfg *config.Config) (*services.GlobalStatsService, *services.ContributorStatsService, error) {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer closeStore()

	tables, err := services.LoadTables(store)
	if err != nil {
		return nil, nil, err
	}

	global := services.NewGlobalStatsService(tables).WithRegularThreshold(cfg.Stats.RegularReviewerLimit)
	contributors := services.NewContributorStatsService(tables)
	return global, contributors, nil
}
