// Package main provides the unified replication command that runs every
// pipeline stage and writes the checksum manifest.
package main

import (
	"flag"
	"fmt"
	"os"

	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	dataDir := flag.String("data", "", "Override input data directory")
	outputDir := flag.String("output", "", "Override output directory")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *dataDir, *outputDir, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting replication pipeline")
	log.Info(fmt.Sprintf("📍 Data: %s", cfg.Data.Dir))
	log.Info(fmt.Sprintf("🎯 Output: %s", cfg.Output.Dir))

	summary, err := pipeline.New(cfg, log).Run()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Speech Documents: %d\n", summary.SpeechDocs)
	fmt.Printf("Minute Documents: %d\n", summary.MinuteDocs)
	fmt.Printf("Core Institutions: %d\n", summary.CoreInstitutions)
	fmt.Printf("Artifacts Written: %d\n", summary.Artifacts)
	fmt.Printf("Total Duration: %v\n", summary.Duration)
	fmt.Println("------------------------------------------------")
}

// resolveConfig loads the file config when given, then applies flag
// overrides on top.
func resolveConfig(path, dataDir, outputDir, logLevel string) (*config.Config, error) {
	var cfg *config.Config

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
