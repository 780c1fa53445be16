// Package main provides the figures command-line tool that renders the
// charts from the persisted analysis artifacts.
package main

import (
	"flag"
	"fmt"
	"os"

	"cbclimate/internal/config"
	"cbclimate/internal/figures"
	"cbclimate/internal/logger"
)

func main() {
	inputDir := flag.String("input", "", "Directory holding the analysis artifacts")
	outputDir := flag.String("output", "", "Directory to write charts into")
	flag.Parse()

	cfg := config.DefaultConfig()
	analysisDir := cfg.Output.AnalysisDir()
	figuresDir := cfg.Output.FiguresDir()

	if *inputDir != "" {
		analysisDir = *inputDir
	}

	if *outputDir != "" {
		figuresDir = *outputDir
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if err := figures.New(cfg, log).Run(analysisDir, figuresDir); err != nil {
		log.Error(fmt.Sprintf("❌ Chart rendering failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("✅ Charts written to %s\n", figuresDir)
}
