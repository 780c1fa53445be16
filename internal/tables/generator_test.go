package tables

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"

	"cbclimate/internal/analysis"
	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/models"
)

// writeAnalysisFixture persists a minimal analysis result set and returns
// its directory plus the main numbers it wrote.
func writeAnalysisFixture(t *testing.T) (string, analysis.MainNumbers) {
	t.Helper()

	res := &analysis.Result{}
	m := &res.Main

	m.SpeechTotalCoreSample = 14024
	m.MinuteTotal = 4805
	m.SpeechInstitutionsCoreSample = 24
	m.MinuteInstitutions = 18
	m.SpeechPeriodStart, m.SpeechPeriodEnd = 1997, 2024
	m.MinutePeriodStart, m.MinutePeriodEnd = 1998, 2024
	m.MinuteLanguages = 9
	m.Stage1SpeechDocs = 1730
	m.Stage1MinuteDocs = 120
	m.Stage1SpeechExcerpts = 5210
	m.Stage1MinuteExcerpts = 301
	m.VerifiedSpeechDocs = 1500
	m.VerifiedMinuteDocs = 90
	m.VerifiedSpeechExcerpts = 4200
	m.VerifiedMinuteExcerpts = 250
	fp := 13.3
	m.SpeechFalsePositiveRatePct = &fp
	rate := 10.7
	m.SpeechRateCoreDenomPct = &rate
	m.SpeechInstitutionsWithClimateSubmissionRule = 22
	m.MinuteInstitutionsWithClimate = 12

	res.Heterogeneity = []analysis.HeterogeneityRow{
		{
			ClimateInstitution:    "European Central Bank",
			ClimateDocs:           models.NullInt{Int: 40, Valid: true},
			ClimateExcerpts:       models.NullInt{Int: 120, Valid: true},
			ClimatePeriod:         "2019-2024",
			NoClimateInstitution:  "Bank of Mexico",
			NoClimateTotalMinutes: models.NullInt{Int: 210, Valid: true},
		},
		{
			ClimateInstitution:    "TOTAL",
			ClimateDocs:           models.NullInt{Int: 40, Valid: true},
			ClimateExcerpts:       models.NullInt{Int: 120, Valid: true},
			NoClimateInstitution:  "TOTAL",
			NoClimateTotalMinutes: models.NullInt{Int: 210, Valid: true},
		},
	}

	dir := t.TempDir()
	if err := analysis.Write(dir, res); err != nil {
		t.Fatalf("writing analysis fixture: %v", err)
	}

	return dir, res.Main
}

func TestRun_WritesTables(t *testing.T) {
	analysisDir, _ := writeAnalysisFixture(t)
	tablesDir := t.TempDir()

	g := New(config.DefaultConfig(), logger.NewNop())
	if err := g.Run(analysisDir, tablesDir); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{OverviewFile, HeterogeneityFile, OverviewPreview, HeterogeneityPreview} {
		if _, err := os.Stat(filepath.Join(tablesDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

// Every numeric cell of the overview table must equal the corresponding
// main_numbers.json value: projection, not recomputation.
func TestOverview_IsStrictProjection(t *testing.T) {
	analysisDir, _ := writeAnalysisFixture(t)
	tablesDir := t.TempDir()

	g := New(config.DefaultConfig(), logger.NewNop())
	if err := g.Run(analysisDir, tablesDir); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(analysisDir, analysis.MainNumbersFile))
	if err != nil {
		t.Fatalf("reading main numbers: %v", err)
	}

	var numbers map[string]any
	if err := json.Unmarshal(data, &numbers); err != nil {
		t.Fatalf("decoding main numbers: %v", err)
	}

	f, err := os.Open(filepath.Join(tablesDir, OverviewFile))
	if err != nil {
		t.Fatalf("opening overview: %v", err)
	}
	defer f.Close()

	var rows []OverviewRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("parsing overview: %v", err)
	}

	if len(rows) != 11 {
		t.Fatalf("overview has %d rows, want 11", len(rows))
	}

	// metric row -> main_numbers key per corpus column.
	keys := map[string][2]string{
		"Total documents":                   {"speech_total_core_sample", "minute_total"},
		"Institutions":                      {"speech_institutions_core_sample", "minute_institutions"},
		"Stage 1 documents":                 {"stage1_speech_docs", "stage1_minute_docs"},
		"Stage 1 excerpts":                  {"stage1_speech_excerpts", "stage1_minute_excerpts"},
		"Stage 2 verified documents":        {"verified_speech_docs", "verified_minute_docs"},
		"Stage 2 verified excerpts":         {"verified_speech_excerpts", "verified_minute_excerpts"},
		"False positive rate (%)":           {"speech_false_positive_rate_pct", "minute_false_positive_rate_pct"},
		"Climate mention rate (%)":          {"speech_rate_core_denom_pct", "minute_rate_pct"},
		"Institutions with climate content": {"speech_institutions_with_climate_submission_rule", "minute_institutions_with_climate"},
	}

	for _, row := range rows {
		pair, ok := keys[row.Metric]
		if !ok {
			continue // Period and Languages rows are label-formatted
		}

		compareCell(t, row.Metric+"/speeches", row.Speeches, numbers[pair[0]])
		compareCell(t, row.Metric+"/minutes", row.Minutes, numbers[pair[1]])
	}
}

// compareCell checks a formatted table cell against the raw JSON value.
func compareCell(t *testing.T, name, cell string, raw any) {
	t.Helper()

	if raw == nil {
		if cell != "" {
			t.Errorf("%s = %q, want empty for null metric", name, cell)
		}

		return
	}

	want, ok := raw.(float64) // encoding/json decodes all numbers as float64
	if !ok {
		t.Fatalf("%s: unexpected JSON type %T", name, raw)
	}

	got, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		t.Fatalf("%s: cell %q is not numeric: %v", name, cell, err)
	}

	if got != want {
		t.Errorf("%s = %v, want %v from main_numbers.json", name, got, want)
	}
}

// Table 2 must be a verbatim copy of the persisted heterogeneity artifact.
func TestHeterogeneity_IsVerbatimProjection(t *testing.T) {
	analysisDir, _ := writeAnalysisFixture(t)
	tablesDir := t.TempDir()

	g := New(config.DefaultConfig(), logger.NewNop())
	if err := g.Run(analysisDir, tablesDir); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	source, err := os.ReadFile(filepath.Join(analysisDir, analysis.HeterogeneityFile))
	if err != nil {
		t.Fatalf("reading analysis artifact: %v", err)
	}

	table, err := os.ReadFile(filepath.Join(tablesDir, HeterogeneityFile))
	if err != nil {
		t.Fatalf("reading table: %v", err)
	}

	if diff := cmp.Diff(string(source), string(table)); diff != "" {
		t.Errorf("table 2 drifted from analysis output (-want +got):\n%s", diff)
	}
}

func TestMarkdownFromCSV(t *testing.T) {
	md, err := MarkdownFromCSV("metric,value\nTotal documents,14024\nRate,10.7\n")
	if err != nil {
		t.Fatalf("MarkdownFromCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}

	if lines[0] != "| metric          | value |" {
		t.Errorf("header = %q", lines[0])
	}

	if lines[1] != "|-----------------|-------|" {
		t.Errorf("separator = %q", lines[1])
	}

	// All lines align to the same display width.
	for i, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width %d, want %d", i+1, len(line), len(lines[0]))
		}
	}
}

func TestMarkdownFromCSV_Empty(t *testing.T) {
	md, err := MarkdownFromCSV("")
	if err != nil {
		t.Fatalf("MarkdownFromCSV failed: %v", err)
	}

	if md != "" {
		t.Errorf("empty input should render empty, got %q", md)
	}
}
