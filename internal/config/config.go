// Package config provides configuration management for the replication pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDataDir        = errors.New("data.dir is required")
	ErrMissingOutputDir      = errors.New("output.dir is required")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidReferenceDate  = errors.New("study reference dates must be YYYY-MM-DD")
	ErrInvalidYearRange      = errors.New("charts year ranges must satisfy start <= end")
	ErrWindowAfterMarker     = errors.New("study.count_window_start must not be after study.appointment_date")
	ErrInvalidRatePrecision  = errors.New("output.rate_decimals must be between 0 and 6")
	ErrMissingEventInstitute = errors.New("study.event_institution is required")
)

const dateLayout = "2006-01-02"

// Config represents the complete pipeline configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Study   StudyConfig   `yaml:"study"`
	Charts  ChartsConfig  `yaml:"charts"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the input corpora. File names below Dir are fixed.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// Input file paths, all relative to Data.Dir.
func (d DataConfig) SpeechesRaw() string     { return filepath.Join(d.Dir, "raw", "speeches_raw.csv") }
func (d DataConfig) MinutesRaw() string      { return filepath.Join(d.Dir, "raw", "minutes_raw.csv") }
func (d DataConfig) Stage1Speeches() string {
	return filepath.Join(d.Dir, "stage1", "speeches_keyword_filtered.csv")
}
func (d DataConfig) Stage1Minutes() string {
	return filepath.Join(d.Dir, "stage1", "minutes_keyword_filtered.csv")
}
func (d DataConfig) VerifiedSpeeches() string {
	return filepath.Join(d.Dir, "processed", "speeches_verified.csv")
}
func (d DataConfig) VerifiedMinutes() string {
	return filepath.Join(d.Dir, "processed", "minutes_verified.csv")
}
func (d DataConfig) ClassifiedExcerpts() string {
	return filepath.Join(d.Dir, "classified", "excerpts_classified.csv")
}

// OutputConfig locates the artifact tree.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	RateDecimals int    `yaml:"rate_decimals"`
}

// Artifact directories, all relative to Output.Dir.
func (o OutputConfig) AnalysisDir() string { return filepath.Join(o.Dir, "analysis") }
func (o OutputConfig) TablesDir() string   { return filepath.Join(o.Dir, "tables") }
func (o OutputConfig) FiguresDir() string  { return filepath.Join(o.Dir, "figures") }
func (o OutputConfig) ManifestPath() string {
	return filepath.Join(o.Dir, "manifest.json")
}

// StudyConfig carries the domain constants of the manuscript.
type StudyConfig struct {
	EventInstitution string            `yaml:"event_institution"`
	AppointmentDate  string            `yaml:"appointment_date"`
	CountWindowStart string            `yaml:"count_window_start"`
	ExcludedNonCentral []string        `yaml:"excluded_non_central"`
	Harmonise        map[string]string `yaml:"harmonise"`
}

// AppointmentTime returns the parsed appointment reference date.
func (s StudyConfig) AppointmentTime() time.Time {
	t, _ := time.Parse(dateLayout, s.AppointmentDate)

	return t
}

// CountWindowTime returns the parsed count-window start date.
func (s StudyConfig) CountWindowTime() time.Time {
	t, _ := time.Parse(dateLayout, s.CountWindowStart)

	return t
}

// IsExcluded reports whether an institution is outside the core speech sample.
func (s StudyConfig) IsExcluded(institution string) bool {
	for _, e := range s.ExcludedNonCentral {
		if e == institution {
			return true
		}
	}

	return false
}

// HarmoniseName maps alternate institution spellings to their canonical name.
func (s StudyConfig) HarmoniseName(institution string) string {
	if canonical, ok := s.Harmonise[institution]; ok {
		return canonical
	}

	return institution
}

// ChartsConfig bounds the year axes of the figures.
type ChartsConfig struct {
	TrendsStartYear     int `yaml:"trends_start_year"`
	CommitmentStartYear int `yaml:"commitment_start_year"`
	EventStartYear      int `yaml:"event_start_year"`
	EndYear             int `yaml:"end_year"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is supplied.
// The constants mirror the replication package of the manuscript.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{Dir: "data"},
		Output: OutputConfig{
			Dir:          "outputs",
			RateDecimals: 1,
		},
		Study: StudyConfig{
			EventInstitution: "European Central Bank",
			AppointmentDate:  "2019-11-01",
			CountWindowStart: "2019-07-01",
			ExcludedNonCentral: []string{
				"Bank for International Settlements",
				"International Monetary Fund",
				"Office of the Superintendent of Financial Institutions",
				"Swiss Federal Banking Commission",
			},
			Harmonise: map[string]string{
				"Board of Governors of the Federal Reserve": "Federal Reserve",
			},
		},
		Charts: ChartsConfig{
			TrendsStartYear:     1997,
			CommitmentStartYear: 2000,
			EventStartYear:      2010,
			EndYear:             2024,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML configuration file, fills unset fields with
// defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return ErrMissingDataDir
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Output.RateDecimals < 0 || c.Output.RateDecimals > 6 {
		return ErrInvalidRatePrecision
	}

	if c.Study.EventInstitution == "" {
		return ErrMissingEventInstitute
	}

	appointment, err := time.Parse(dateLayout, c.Study.AppointmentDate)
	if err != nil {
		return fmt.Errorf("%w: appointment_date %q", ErrInvalidReferenceDate, c.Study.AppointmentDate)
	}

	window, err := time.Parse(dateLayout, c.Study.CountWindowStart)
	if err != nil {
		return fmt.Errorf("%w: count_window_start %q", ErrInvalidReferenceDate, c.Study.CountWindowStart)
	}

	if window.After(appointment) {
		return ErrWindowAfterMarker
	}

	ranges := [][2]int{
		{c.Charts.TrendsStartYear, c.Charts.EndYear},
		{c.Charts.CommitmentStartYear, c.Charts.EndYear},
		{c.Charts.EventStartYear, c.Charts.EndYear},
	}
	for _, r := range ranges {
		if r[0] > r[1] {
			return fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, r[0], r[1])
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
