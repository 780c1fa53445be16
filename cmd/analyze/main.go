// Package main provides the analysis command-line tool that loads the input
// corpus and writes the statistical artifacts.
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
	flag.Parse()

	cfg, err := loadConfig(*configPath, *dataDir, *outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	res, err := pipeline.New(cfg, log).Analyze()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Analysis failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("📊 Analyzed %d speeches and %d minutes\n",
		res.Main.SpeechTotalCoreSample, res.Main.MinuteTotal)
	fmt.Printf("✅ Artifacts written to %s\n", cfg.Output.AnalysisDir())
}

func loadConfig(path, dataDir, outputDir string) (*config.Config, error) {
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
