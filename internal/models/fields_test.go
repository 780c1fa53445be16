package models

import (
	"testing"
	"time"
)

func TestDate_UnmarshalCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{name: "iso date", input: "2019-11-01", want: time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)},
		{name: "iso datetime", input: "2019-11-01 10:30:00", want: time.Date(2019, 11, 1, 10, 30, 0, 0, time.UTC)},
		{name: "slash date", input: "01/11/2019", want: time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)},
		{name: "long form", input: "November 1, 2019", want: time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty is null", input: "", wantNil: true},
		{name: "whitespace is null", input: "  ", wantNil: true},
		{name: "garbage", input: "first of Nov", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date

			err := d.UnmarshalCSV(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("UnmarshalCSV(%q) should fail", tt.input)
				}

				return
			}

			if err != nil {
				t.Fatalf("UnmarshalCSV(%q) failed: %v", tt.input, err)
			}

			if tt.wantNil {
				if d.Valid {
					t.Errorf("UnmarshalCSV(%q) should be null", tt.input)
				}

				return
			}

			if !d.Valid || !d.Time.Equal(tt.want) {
				t.Errorf("UnmarshalCSV(%q) = %v valid=%v, want %v", tt.input, d.Time, d.Valid, tt.want)
			}
		})
	}
}

func TestDate_Year(t *testing.T) {
	var null Date
	if null.Year() != 0 {
		t.Errorf("null date Year = %d, want 0", null.Year())
	}

	d := Date{Time: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	if d.Year() != 2021 {
		t.Errorf("Year = %d, want 2021", d.Year())
	}
}

func TestFlag_UnmarshalCSV(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "True", want: true},
		{input: "true", want: true},
		{input: "1", want: true},
		{input: "yes", want: true},
		{input: "False", want: false},
		{input: "0", want: false},
		{input: "", want: false}, // fillna(False)
		{input: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		var f Flag

		err := f.UnmarshalCSV(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("UnmarshalCSV(%q) should fail", tt.input)
			}

			continue
		}

		if err != nil {
			t.Errorf("UnmarshalCSV(%q) failed: %v", tt.input, err)

			continue
		}

		if bool(f) != tt.want {
			t.Errorf("UnmarshalCSV(%q) = %v, want %v", tt.input, f, tt.want)
		}
	}
}

func TestNullFloat_UnmarshalCSV(t *testing.T) {
	var n NullFloat

	if err := n.UnmarshalCSV("2.5"); err != nil || !n.Valid || n.Float64 != 2.5 {
		t.Errorf("UnmarshalCSV(2.5) = %+v, err %v", n, err)
	}

	if err := n.UnmarshalCSV(""); err != nil || n.Valid {
		t.Errorf("empty cell should be null, got %+v, err %v", n, err)
	}

	if err := n.UnmarshalCSV("high"); err == nil {
		t.Error("UnmarshalCSV(high) should fail")
	}
}

func TestNullInt_UnmarshalCSV(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantNil bool
		wantErr bool
	}{
		{input: "42", want: 42},
		{input: "42.0", want: 42}, // float-formatted identifier
		{input: "", wantNil: true},
		{input: "42.5", wantErr: true},
		{input: "id-42", wantErr: true},
	}

	for _, tt := range tests {
		var n NullInt

		err := n.UnmarshalCSV(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("UnmarshalCSV(%q) should fail", tt.input)
			}

			continue
		}

		if err != nil {
			t.Errorf("UnmarshalCSV(%q) failed: %v", tt.input, err)

			continue
		}

		if tt.wantNil {
			if n.Valid {
				t.Errorf("UnmarshalCSV(%q) should be null", tt.input)
			}

			continue
		}

		if !n.Valid || n.Int != tt.want {
			t.Errorf("UnmarshalCSV(%q) = %+v, want %d", tt.input, n, tt.want)
		}
	}
}

func TestExcerpt_DocID(t *testing.T) {
	sp := Excerpt{DocType: DocTypeSpeech, SpeechID: NullInt{Int: 7, Valid: true}}
	if id := sp.DocID(); !id.Valid || id.Int != 7 {
		t.Errorf("speech DocID = %+v, want 7", id)
	}

	mn := Excerpt{DocType: DocTypeMinute, MinuteID: NullInt{Int: 3, Valid: true}}
	if id := mn.DocID(); !id.Valid || id.Int != 3 {
		t.Errorf("minute DocID = %+v, want 3", id)
	}
}
