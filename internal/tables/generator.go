// Package tables projects the persisted analysis outputs into the two
// manuscript tables. Pure reshaping and formatting: every value comes from
// an analysis artifact, nothing is recomputed here.
package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"cbclimate/internal/analysis"
	"cbclimate/internal/config"
	"cbclimate/internal/logger"
)

// Table artifact file names, fixed under the tables output directory.
const (
	OverviewFile        = "table1_overview.csv"
	HeterogeneityFile   = "table2_institution_heterogeneity.csv"
	OverviewPreview     = "table1_overview.md"
	HeterogeneityPreview = "table2_institution_heterogeneity.md"
)

// OverviewRow is one row of the overview table.
type OverviewRow struct {
	Metric   string `csv:"metric"`
	Speeches string `csv:"speeches"`
	Minutes  string `csv:"minutes"`
}

// Generator builds the manuscript tables.
type Generator struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a table generator.
func New(cfg *config.Config, log *logger.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Run reads the persisted analysis artifacts and writes both tables as CSV
// plus an aligned markdown preview of each.
func (g *Generator) Run(analysisDir, tablesDir string) error {
	res, err := analysis.ReadResult(analysisDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(tablesDir, 0755); err != nil {
		return fmt.Errorf("creating tables dir: %w", err)
	}

	overview := g.overviewRows(res.Main)

	if err := writeTable(filepath.Join(tablesDir, OverviewFile), filepath.Join(tablesDir, OverviewPreview), &overview); err != nil {
		return err
	}

	if err := writeTable(filepath.Join(tablesDir, HeterogeneityFile), filepath.Join(tablesDir, HeterogeneityPreview), &res.Heterogeneity); err != nil {
		return err
	}

	g.log.Info("tables written", "overview_rows", len(overview), "heterogeneity_rows", len(res.Heterogeneity))

	return nil
}

// overviewRows formats the overview table from the main numbers. The row
// set and labels follow the manuscript's Table 1.
func (g *Generator) overviewRows(m analysis.MainNumbers) []OverviewRow {
	decimals := g.cfg.Output.RateDecimals

	return []OverviewRow{
		{Metric: "Total documents", Speeches: fmtInt(m.SpeechTotalCoreSample), Minutes: fmtInt(m.MinuteTotal)},
		{Metric: "Institutions", Speeches: fmtInt(m.SpeechInstitutionsCoreSample), Minutes: fmtInt(m.MinuteInstitutions)},
		{
			Metric:   "Period",
			Speeches: fmt.Sprintf("%d-%d", m.SpeechPeriodStart, m.SpeechPeriodEnd),
			Minutes:  fmt.Sprintf("%d-%d", m.MinutePeriodStart, m.MinutePeriodEnd),
		},
		{Metric: "Languages", Speeches: "Predominantly English", Minutes: fmt.Sprintf("%d languages", m.MinuteLanguages)},
		{Metric: "Stage 1 documents", Speeches: fmtInt(m.Stage1SpeechDocs), Minutes: fmtInt(m.Stage1MinuteDocs)},
		{Metric: "Stage 1 excerpts", Speeches: fmtInt(m.Stage1SpeechExcerpts), Minutes: fmtInt(m.Stage1MinuteExcerpts)},
		{Metric: "Stage 2 verified documents", Speeches: fmtInt(m.VerifiedSpeechDocs), Minutes: fmtInt(m.VerifiedMinuteDocs)},
		{Metric: "Stage 2 verified excerpts", Speeches: fmtInt(m.VerifiedSpeechExcerpts), Minutes: fmtInt(m.VerifiedMinuteExcerpts)},
		{
			Metric:   "False positive rate (%)",
			Speeches: fmtRate(m.SpeechFalsePositiveRatePct, decimals),
			Minutes:  fmtRate(m.MinuteFalsePositiveRatePct, decimals),
		},
		{
			Metric:   "Climate mention rate (%)",
			Speeches: fmtRate(m.SpeechRateCoreDenomPct, decimals),
			Minutes:  fmtRate(m.MinuteRatePct, decimals),
		},
		{
			Metric:   "Institutions with climate content",
			Speeches: fmtInt(m.SpeechInstitutionsWithClimateSubmissionRule),
			Minutes:  fmtInt(m.MinuteInstitutionsWithClimate),
		},
	}
}

// writeTable persists one table as CSV and as an aligned markdown preview.
func writeTable(csvPath, previewPath string, records any) error {
	text, err := gocsv.MarshalString(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(csvPath), err)
	}

	if err := os.WriteFile(csvPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(csvPath), err)
	}

	preview, err := MarkdownFromCSV(text)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(previewPath), err)
	}

	if err := os.WriteFile(previewPath, []byte(preview), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(previewPath), err)
	}

	return nil
}

func fmtInt(v int) string {
	return strconv.Itoa(v)
}

// fmtRate formats a nullable rate at the configured precision; null cells
// stay empty.
func fmtRate(v *float64, decimals int) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', decimals, 64)
}
