package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alimgiray/repostats/internal/models"
	"github.com/alimgiray/repostats/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TableStore persists and reloads complete table snapshots
type TableStore interface {
	Name() string
	Save(tables *models.Tables) error
	Load() (*models.Tables, error)
}

// BuildResult describes one completed build run
type BuildResult struct {
	RunID    string
	Tables   *models.Tables
	Stores   []string
	Duration time.Duration
}

type BuildService struct {
	extractor *ExtractorService
	stores    []TableStore
}

func NewBuildService(extractor *ExtractorService, stores ...TableStore) *BuildService {
	return &BuildService{
		extractor: extractor,
		stores:    stores,
	}
}

// Build runs a full extraction and overwrites every store with the result.
// Stores are only written once extraction has succeeded.
func (s *BuildService) Build() (*BuildResult, error) {
	if len(s.stores) == 0 {
		return nil, errors.New("at least one table store is required")
	}

	result := &BuildResult{RunID: uuid.New().String()}
	log := logger.WithField("run_id", result.RunID)
	started := time.Now()

	log.Info("Build started")

	tables, err := s.extractor.Extract()
	if err != nil {
		log.WithError(err).Error("Extraction aborted, tables left untouched")
		return nil, err
	}
	result.Tables = tables

	for _, store := range s.stores {
		if err := store.Save(tables); err != nil {
			return nil, fmt.Errorf("saving %s tables: %w", store.Name(), err)
		}
		result.Stores = append(result.Stores, store.Name())
	}

	result.Duration = time.Since(started)
	log.WithFields(logrus.Fields{
		"stores":      result.Stores,
		"duration_ms": result.Duration.Milliseconds(),
	}).Info("Build completed")

	return result, nil
}

// LoadTables reads a snapshot for the reporters
func LoadTables(store TableStore) (*models.Tables, error) {
	tables, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s tables (run the build command first?): %w", store.Name(), err)
	}

	logger.WithFields(logrus.Fields{
		"store":         store.Name(),
		"comments":      len(tables.Comments),
		"pull_requests": len(tables.PullRequests),
	}).Debug("Tables loaded")

	return tables, nil
}
