package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig marks configuration problems reported before any I/O
var ErrInvalidConfig = errors.New("invalid configuration")

// Supported table stores
const (
	StoreCSV      = "csv"
	StoreSQLite   = "sqlite"
	StoreWorkbook = "xlsx"
)

type Config struct {
	EnvFileLoaded bool

	Source SourceConfig
	Stats  StatsConfig
	Server ServerConfig
	Log    LogConfig
}

// SourceConfig locates the issue-tracker export
type SourceConfig struct {
	MetaDir      string
	ManifestPath string
}

// StatsConfig controls where tables live and how they are aggregated
type StatsConfig struct {
	Dir                  string
	Store                string
	DBPath               string
	WorkbookPath         string
	CanonicalBranch      string
	RegularReviewerLimit int
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// A missing .env file is fine, the environment still applies
	envLoaded := godotenv.Load() == nil

	AppConfig = &Config{
		EnvFileLoaded: envLoaded,

		Source: SourceConfig{
			MetaDir:      getEnv("GH_META_DIR", "../bitcoin-gh-meta"),
			ManifestPath: getEnv("ISSUE_MANIFEST", ""),
		},
		Stats: StatsConfig{
			Dir:                  getEnv("STATS_DIR", "."),
			Store:                getEnv("TABLE_STORE", StoreCSV),
			DBPath:               getEnv("STATS_DB_PATH", "./repostats.db"),
			WorkbookPath:         getEnv("STATS_WORKBOOK_PATH", "./repostats.xlsx"),
			CanonicalBranch:      getEnv("CANONICAL_BRANCH", "bitcoin:master"),
			RegularReviewerLimit: getEnvAsInt("REGULAR_REVIEWER_MIN_COMMENTS", 5),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return AppConfig.Validate()
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Stats.Store {
	case StoreCSV, StoreSQLite, StoreWorkbook:
	default:
		return fmt.Errorf("%w: unknown table store %q", ErrInvalidConfig, c.Stats.Store)
	}
	if c.Stats.CanonicalBranch == "" {
		return fmt.Errorf("%w: canonical branch is required", ErrInvalidConfig)
	}
	if c.Stats.RegularReviewerLimit < 1 {
		return fmt.Errorf("%w: regular reviewer threshold must be positive", ErrInvalidConfig)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
