package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cbclimate/internal/config"
	"cbclimate/internal/logger"
)

// fixture holds the content of every input file, keyed by relative path.
type fixture map[string]string

// validFixture is a minimal consistent corpus.
func validFixture() fixture {
	return fixture{
		"raw/speeches_raw.csv": "year,institution,has_climate,institution_harmonised\n" +
			"2019,European Central Bank,True,European Central Bank\n" +
			"2020,Bank of Japan,False,Bank of Japan\n",
		"raw/minutes_raw.csv": "Date,year,institution,Language,has_climate\n" +
			"2019-06-06,2019,European Central Bank,English,True\n" +
			"2020-01-21,2020,Bank of Japan,Japanese,False\n",
		"stage1/speeches_keyword_filtered.csv":  "speech_id\n0\n",
		"stage1/minutes_keyword_filtered.csv":   "minute_id\n0\n",
		"processed/speeches_verified.csv":       "year,speech_id\n2019,0\n",
		"processed/minutes_verified.csv":        "year,minute_id\n2019,0\n",
		"classified/excerpts_classified.csv": "doc_type,speech_id,minute_id,institution,ensemble_level,openai_level,year\n" +
			"speech,0,,European Central Bank,2.0,2.0,2019\n" +
			"minute,,0,European Central Bank,1.5,1.0,2019\n",
	}
}

// writeFixture materializes a fixture under a temp data dir and returns a
// config pointing at it.
func writeFixture(t *testing.T, fx fixture) *config.Config {
	t.Helper()

	dataDir := t.TempDir()
	for rel, content := range fx {
		path := filepath.Join(dataDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}

		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Data.Dir = dataDir

	return cfg
}

func TestLoad_Valid(t *testing.T) {
	cfg := writeFixture(t, validFixture())

	ds, err := New(cfg, logger.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Speeches) != 2 || len(ds.Minutes) != 2 {
		t.Fatalf("loaded %d speeches, %d minutes, want 2 and 2", len(ds.Speeches), len(ds.Minutes))
	}

	// Sequential IDs by row position.
	wantIDs := []int{0, 1}
	gotIDs := []int{ds.Speeches[0].SpeechID, ds.Speeches[1].SpeechID}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("speech IDs mismatch (-want +got):\n%s", diff)
	}

	if ds.Speeches[0].Institution != "European Central Bank" || !bool(ds.Speeches[0].HasClimate) {
		t.Errorf("first speech parsed wrong: %+v", ds.Speeches[0])
	}

	if ds.Minutes[0].Date.Year() != 2019 {
		t.Errorf("minute date year = %d, want 2019", ds.Minutes[0].Date.Year())
	}

	if len(ds.Excerpts) != 2 {
		t.Fatalf("loaded %d excerpts, want 2", len(ds.Excerpts))
	}

	if ds.Excerpts[1].SpeechID.Valid {
		t.Error("minute excerpt should have null speech_id")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	fx := validFixture()
	fx["raw/minutes_raw.csv"] = "year,institution,Language,has_climate\n2019,European Central Bank,English,True\n"
	cfg := writeFixture(t, fx)

	_, err := New(cfg, logger.NewNop()).Load()
	if err == nil {
		t.Fatal("Load should fail on missing Date column")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error is %T, want *SchemaError", err)
	}

	if diff := cmp.Diff([]string{"Date"}, schemaErr.Missing); diff != "" {
		t.Errorf("missing columns mismatch (-want +got):\n%s", diff)
	}

	if schemaErr.File != "minutes_raw.csv" {
		t.Errorf("File = %s, want minutes_raw.csv", schemaErr.File)
	}
}

func TestLoad_MalformedValue(t *testing.T) {
	fx := validFixture()
	fx["raw/minutes_raw.csv"] = "Date,year,institution,Language,has_climate\n" +
		"soon,2019,European Central Bank,English,definitely\n"
	cfg := writeFixture(t, fx)

	_, err := New(cfg, logger.NewNop()).Load()
	if err == nil {
		t.Fatal("Load should fail on malformed cells")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
}

func TestLoad_FileMissing(t *testing.T) {
	fx := validFixture()
	delete(fx, "classified/excerpts_classified.csv")
	cfg := writeFixture(t, fx)

	if _, err := New(cfg, logger.NewNop()).Load(); err == nil {
		t.Fatal("Load should fail when an input file is absent")
	}
}

func TestLoad_CoercedNulls(t *testing.T) {
	fx := validFixture()
	// Empty date and empty levels are nulls, not errors.
	fx["raw/minutes_raw.csv"] = "Date,year,institution,Language,has_climate\n" +
		",2019,European Central Bank,English,\n"
	fx["classified/excerpts_classified.csv"] = "doc_type,speech_id,minute_id,institution,ensemble_level,openai_level,year\n" +
		"minute,,0,European Central Bank,,,\n"
	cfg := writeFixture(t, fx)

	ds, err := New(cfg, logger.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if ds.Minutes[0].Date.Valid {
		t.Error("empty date should be null")
	}

	if bool(ds.Minutes[0].HasClimate) {
		t.Error("empty has_climate should read as false")
	}

	if ds.Excerpts[0].EnsembleLevel.Valid || ds.Excerpts[0].Year.Valid {
		t.Errorf("empty excerpt cells should be null: %+v", ds.Excerpts[0])
	}
}
