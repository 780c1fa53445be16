package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when coercing a date cell.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"January 2, 2006",
}

// Date is a nullable date cell. An empty cell is null; a non-empty cell
// that matches none of the known layouts is a parse failure.
type Date struct {
	Time  time.Time
	Valid bool
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *Date) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}

		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Time: t, Valid: true}

			return nil
		}
	}

	return fmt.Errorf("unrecognized date %q", s)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Date) MarshalCSV() (string, error) {
	if !d.Valid {
		return "", nil
	}

	return d.Time.Format("2006-01-02"), nil
}

// Year returns the calendar year, or 0 for a null date.
func (d Date) Year() int {
	if !d.Valid {
		return 0
	}

	return d.Time.Year()
}

// Flag is a boolean cell. An empty cell reads as false, matching the
// fillna(False) treatment of the source data.
type Flag bool

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (f *Flag) UnmarshalCSV(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "f", "0", "no":
		*f = false
	case "true", "t", "1", "yes":
		*f = true
	default:
		return fmt.Errorf("unrecognized boolean %q", s)
	}

	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (f Flag) MarshalCSV() (string, error) {
	if f {
		return "True", nil
	}

	return "False", nil
}

// NullFloat is a nullable numeric cell.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (n *NullFloat) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = NullFloat{}

		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("unrecognized number %q", s)
	}

	*n = NullFloat{Float64: v, Valid: true}

	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (n NullFloat) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}

	return strconv.FormatFloat(n.Float64, 'f', -1, 64), nil
}

// NullInt is a nullable integer cell. Float-formatted integers ("12.0")
// are accepted because the derivative CSVs were written from frames where
// nulls forced the identifier columns to floating point.
type NullInt struct {
	Int   int
	Valid bool
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (n *NullInt) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = NullInt{}

		return nil
	}

	if v, err := strconv.Atoi(s); err == nil {
		*n = NullInt{Int: v, Valid: true}

		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("unrecognized identifier %q", s)
	}

	*n = NullInt{Int: int(f), Valid: true}

	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (n NullInt) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}

	return strconv.Itoa(n.Int), nil
}
