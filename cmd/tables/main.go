// Package main provides the tables command-line tool that projects the
// persisted analysis artifacts into the summary tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/tables"
)

func main() {
	inputDir := flag.String("input", "", "Directory holding the analysis artifacts")
	outputDir := flag.String("output", "", "Directory to write tables into")
	flag.Parse()

	cfg := config.DefaultConfig()
	analysisDir := cfg.Output.AnalysisDir()
	tablesDir := cfg.Output.TablesDir()

	if *inputDir != "" {
		analysisDir = *inputDir
	}

	if *outputDir != "" {
		tablesDir = *outputDir
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if err := tables.New(cfg, log).Run(analysisDir, tablesDir); err != nil {
		log.Error(fmt.Sprintf("❌ Table generation failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("✅ Tables written to %s\n", tablesDir)
}
