package figures

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Corpus colors shared by every chart.
var (
	speechColor = color.RGBA{R: 0x8B, G: 0x3A, B: 0x3A, A: 0xFF}
	minuteColor = color.RGBA{R: 0x2F, G: 0x2F, B: 0x2F, A: 0xFF}
	guideColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// newPlot creates a titled plot with axis labels and a light grid.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	grid.Horizontal.Color = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	p.Add(grid)

	return p
}

// seriesLine builds a solid line with point markers for one corpus series.
func seriesLine(xys plotter.XYs, c color.RGBA) (*plotter.Line, *plotter.Scatter, error) {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}

	line.Color = c
	line.Width = vg.Points(1.5)
	points.GlyphStyle.Color = c
	points.GlyphStyle.Radius = vg.Points(2)

	return line, points, nil
}

// guideLine builds a dashed guide between two points.
func guideLine(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}

	line.Color = guideColor
	line.Width = vg.Points(0.8)
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	return line, nil
}
