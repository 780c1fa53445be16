package tables

import (
	"encoding/csv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MarkdownFromCSV renders CSV text as an aligned markdown table. Column
// widths use display width so wide characters in institution names keep
// the pipes aligned.
func MarkdownFromCSV(text string) (string, error) {
	r := csv.NewReader(strings.NewReader(text))

	rows, err := r.ReadAll()
	if err != nil {
		return "", err
	}

	if len(rows) == 0 {
		return "", nil
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Compute the display width of every column.
	widths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow := func(row []string) {
		b.WriteString("|")

		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(rows[0])

	// Separator row under the header.
	b.WriteString("|")

	for i := 0; i < colCount; i++ {
		b.WriteString(strings.Repeat("-", widths[i]+2))
		b.WriteString("|")
	}

	b.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return b.String(), nil
}
