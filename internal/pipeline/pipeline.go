// Package pipeline orchestrates the replication stages: load, analyze,
// tabulate, render, and manifest the outputs.
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"cbclimate/internal/analysis"
	"cbclimate/internal/config"
	"cbclimate/internal/figures"
	"cbclimate/internal/loader"
	"cbclimate/internal/logger"
	"cbclimate/internal/tables"
	"cbclimate/pkg/manifest"
)

// Summary reports what a full pipeline run produced.
type Summary struct {
	SpeechDocs       int
	MinuteDocs       int
	CoreInstitutions int
	Artifacts        int
	Duration         time.Duration
}

// Pipeline wires the stages together around a shared configuration.
type Pipeline struct {
	cfg *config.Config
	log *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Analyze runs the load and analysis stages and persists the analysis
// artifacts. Later stages read only those artifacts, never the raw inputs.
func (p *Pipeline) Analyze() (*analysis.Result, error) {
	ds, err := loader.New(p.cfg, p.log).Load()
	if err != nil {
		return nil, fmt.Errorf("loading inputs: %w", err)
	}

	res := analysis.New(p.cfg, p.log).Run(ds)

	if err := analysis.Write(p.cfg.Output.AnalysisDir(), res); err != nil {
		return nil, fmt.Errorf("writing analysis artifacts: %w", err)
	}

	return res, nil
}

// Tables renders the summary tables from the persisted analysis artifacts.
func (p *Pipeline) Tables() error {
	return tables.New(p.cfg, p.log).Run(p.cfg.Output.AnalysisDir(), p.cfg.Output.TablesDir())
}

// Figures renders the charts from the persisted analysis artifacts.
func (p *Pipeline) Figures() error {
	return figures.New(p.cfg, p.log).Run(p.cfg.Output.AnalysisDir(), p.cfg.Output.FiguresDir())
}

// Run executes every stage in order and writes a checksum manifest of all
// artifacts. Re-running on the same inputs reproduces every byte.
func (p *Pipeline) Run() (*Summary, error) {
	start := time.Now()

	p.log.Info("Phase 1: Loading inputs and computing statistics...")

	res, err := p.Analyze()
	if err != nil {
		return nil, err
	}

	p.log.Info("Phase 2: Generating tables...")

	if err := p.Tables(); err != nil {
		return nil, fmt.Errorf("generating tables: %w", err)
	}

	p.log.Info("Phase 3: Rendering figures...")

	if err := p.Figures(); err != nil {
		return nil, fmt.Errorf("rendering figures: %w", err)
	}

	p.log.Info("Phase 4: Writing checksum manifest...")

	paths := artifactPaths()

	m, err := manifest.Build(p.cfg.Output.Dir, paths)
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}

	if err := m.Write(p.cfg.Output.ManifestPath()); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return &Summary{
		SpeechDocs:       res.Main.SpeechTotalCoreSample,
		MinuteDocs:       res.Main.MinuteTotal,
		CoreInstitutions: res.Main.SpeechInstitutionsCoreSample,
		Artifacts:        len(paths),
		Duration:         time.Since(start),
	}, nil
}

// artifactPaths lists every file a full run writes, relative to the output
// directory, in the order the stages produce them.
func artifactPaths() []string {
	analysisFiles := []string{
		analysis.MainNumbersFile,
		analysis.WithinInstitutionFile,
		analysis.YearlyRatesFile,
		analysis.ECBYearlyFile,
		analysis.CommitmentDistFile,
		analysis.FirstMentionLagFile,
		analysis.HeterogeneityFile,
	}

	tableFiles := []string{
		tables.OverviewFile,
		tables.OverviewPreview,
		tables.HeterogeneityFile,
		tables.HeterogeneityPreview,
	}

	figureFiles := []string{
		figures.TemporalTrendsFile,
		figures.TemporalCommitmentFile,
		figures.LagardeEffectFile,
		figures.CommitmentGroupedFile,
		figures.FirstMentionLagFile,
	}

	var paths []string
	for _, f := range analysisFiles {
		paths = append(paths, filepath.Join("analysis", f))
	}

	for _, f := range tableFiles {
		paths = append(paths, filepath.Join("tables", f))
	}

	for _, f := range figureFiles {
		paths = append(paths, filepath.Join("figures", f))
	}

	return paths
}
