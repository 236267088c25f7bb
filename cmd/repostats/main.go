package main

import (
	"log"
	"os"

	"github.com/alimgiray/repostats/internal/cli"
	"github.com/alimgiray/repostats/pkg/config"
	"github.com/alimgiray/repostats/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(config.AppConfig.Log.Level)
	if !config.AppConfig.EnvFileLoaded {
		logger.Debugf("No .env file found, using environment variables")
	}

	if err := cli.Execute(config.AppConfig, os.Args[1:], os.Stdout); err != nil {
		logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
