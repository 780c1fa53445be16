package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Analysis artifact file names, fixed under the analysis output directory.
const (
	MainNumbersFile       = "main_numbers.json"
	WithinInstitutionFile = "within_institution_rates.csv"
	YearlyRatesFile       = "yearly_rates.csv"
	ECBYearlyFile         = "ecb_yearly.csv"
	CommitmentDistFile    = "commitment_distribution.csv"
	FirstMentionLagFile   = "first_mention_lag.csv"
	HeterogeneityFile     = "institution_heterogeneity.csv"
)

// Write persists the full result set under dir, overwriting previous runs.
func Write(dir string, res *Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating analysis dir: %w", err)
	}

	data, err := json.MarshalIndent(res.Main, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", MainNumbersFile, err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(dir, MainNumbersFile), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", MainNumbersFile, err)
	}

	if err := writeCSV(filepath.Join(dir, WithinInstitutionFile), &res.WithinInstitution); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, YearlyRatesFile), &res.YearlyRates); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, ECBYearlyFile), &res.ECBYearly); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, CommitmentDistFile), &res.CommitmentDist); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, FirstMentionLagFile), &res.Lags); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, HeterogeneityFile), &res.Heterogeneity)
}

// ReadResult loads a persisted result set back from dir. Downstream stages
// consume only this persisted form, never the in-memory one.
func ReadResult(dir string) (*Result, error) {
	res := &Result{}

	data, err := os.ReadFile(filepath.Join(dir, MainNumbersFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", MainNumbersFile, err)
	}

	if err := json.Unmarshal(data, &res.Main); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", MainNumbersFile, err)
	}

	if res.WithinInstitution, err = readCSV[InstitutionRates](filepath.Join(dir, WithinInstitutionFile)); err != nil {
		return nil, err
	}

	if res.YearlyRates, err = readCSV[YearlyPoint](filepath.Join(dir, YearlyRatesFile)); err != nil {
		return nil, err
	}

	if res.ECBYearly, err = readCSV[YearlyPoint](filepath.Join(dir, ECBYearlyFile)); err != nil {
		return nil, err
	}

	if res.CommitmentDist, err = readCSV[CommitmentBin](filepath.Join(dir, CommitmentDistFile)); err != nil {
		return nil, err
	}

	if res.Lags, err = readCSV[FirstMentionLag](filepath.Join(dir, FirstMentionLagFile)); err != nil {
		return nil, err
	}

	if res.Heterogeneity, err = readCSV[HeterogeneityRow](filepath.Join(dir, HeterogeneityFile)); err != nil {
		return nil, err
	}

	return res, nil
}

func writeCSV(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}

func readCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var records []T
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return records, nil
}
