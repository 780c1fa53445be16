// Package loader reads the corpus CSVs into typed, immutable record tables.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/models"
)

// Required column sets per input file.
var (
	speechesRawColumns   = []string{"year", "institution", "has_climate", "institution_harmonised"}
	minutesRawColumns    = []string{"Date", "year", "institution", "Language", "has_climate"}
	stage1SpeechColumns  = []string{"speech_id"}
	stage1MinuteColumns  = []string{"minute_id"}
	verifiedSpeechColumns = []string{"year", "speech_id"}
	verifiedMinuteColumns = []string{"year", "minute_id"}
	excerptColumns       = []string{"doc_type", "speech_id", "minute_id", "institution", "ensemble_level", "openai_level", "year"}
)

// Loader reads the seven input tables declared by the configuration.
type Loader struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a loader.
func New(cfg *config.Config, log *logger.Logger) *Loader {
	return &Loader{cfg: cfg, log: log}
}

// Load reads every input file, validates schemas, and assigns sequential
// document identifiers. It has no side effects beyond reading.
func (l *Loader) Load() (*models.Dataset, error) {
	ds := &models.Dataset{}
	data := l.cfg.Data

	var err error

	if ds.Speeches, err = readTable[models.Speech](data.SpeechesRaw(), speechesRawColumns); err != nil {
		return nil, err
	}

	if ds.Minutes, err = readTable[models.Minute](data.MinutesRaw(), minutesRawColumns); err != nil {
		return nil, err
	}

	if ds.Stage1Speeches, err = readTable[models.Stage1Speech](data.Stage1Speeches(), stage1SpeechColumns); err != nil {
		return nil, err
	}

	if ds.Stage1Minutes, err = readTable[models.Stage1Minute](data.Stage1Minutes(), stage1MinuteColumns); err != nil {
		return nil, err
	}

	if ds.VerifiedSpeeches, err = readTable[models.VerifiedSpeech](data.VerifiedSpeeches(), verifiedSpeechColumns); err != nil {
		return nil, err
	}

	if ds.VerifiedMinutes, err = readTable[models.VerifiedMinute](data.VerifiedMinutes(), verifiedMinuteColumns); err != nil {
		return nil, err
	}

	if ds.Excerpts, err = readTable[models.Excerpt](data.ClassifiedExcerpts(), excerptColumns); err != nil {
		return nil, err
	}

	// Document IDs are row positions; the derivative files reference them.
	for i := range ds.Speeches {
		ds.Speeches[i].SpeechID = i
	}

	for i := range ds.Minutes {
		ds.Minutes[i].MinuteID = i
	}

	l.log.Info("corpus loaded",
		"speeches", len(ds.Speeches),
		"minutes", len(ds.Minutes),
		"stage1_speech_excerpts", len(ds.Stage1Speeches),
		"stage1_minute_excerpts", len(ds.Stage1Minutes),
		"verified_speech_excerpts", len(ds.VerifiedSpeeches),
		"verified_minute_excerpts", len(ds.VerifiedMinutes),
		"classified_excerpts", len(ds.Excerpts),
	)

	return ds, nil
}

// readTable reads one CSV into a record slice, failing with a SchemaError
// when required columns are absent and a ParseError when a cell cannot be
// coerced.
func readTable[T any](path string, required []string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	if err := checkColumns(path, data, required); err != nil {
		return nil, err
	}

	var records []T
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, &ParseError{File: filepath.Base(path), Err: err}
	}

	return records, nil
}

// checkColumns verifies the header row carries every required column.
func checkColumns(path string, data []byte, required []string) error {
	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if err != nil {
		return &ParseError{File: filepath.Base(path), Err: fmt.Errorf("reading header: %w", err)}
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string

	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{File: filepath.Base(path), Missing: missing}
	}

	return nil
}
