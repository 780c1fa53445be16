// Package figures renders the five manuscript charts from the persisted
// analysis artifacts. Pure rendering: every plotted value was computed and
// written by the analysis stage.
package figures

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"cbclimate/internal/analysis"
	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/models"
)

// Chart file names, fixed under the figures output directory.
const (
	TemporalTrendsFile     = "fig1_temporal_trends.pdf"
	TemporalCommitmentFile = "fig11_temporal_commitment.pdf"
	LagardeEffectFile      = "fig6_lagarde_effect.pdf"
	CommitmentGroupedFile  = "fig_commitment_grouped.pdf"
	FirstMentionLagFile    = "fig_first_mention_lag.pdf"
)

// eventMarkers annotate the temporal trends chart.
var eventMarkers = []struct {
	year  int
	label string
}{
	{2015, "Paris Agreement"},
	{2017, "NGFS founded"},
	{2021, "COP26"},
}

// shortNames compress institution names for the lag chart's y axis.
var shortNames = map[string]string{
	"European Central Bank":     "ECB",
	"Reserve Bank of India":     "RBI",
	"People's Bank of China":    "PBoC",
	"Sveriges Riksbank":         "Riksbank",
	"Central Bank of Turkey":    "CB Turkey",
	"Reserve Bank of Australia": "RBA",
	"National Bank of Romania":  "NB Romania",
	"National Bank of Poland":   "NB Poland",
}

// Renderer draws the manuscript charts.
type Renderer struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a figure renderer.
func New(cfg *config.Config, log *logger.Logger) *Renderer {
	return &Renderer{cfg: cfg, log: log}
}

// Run reads the persisted analysis artifacts and renders all five charts.
func (r *Renderer) Run(analysisDir, figuresDir string) error {
	res, err := analysis.ReadResult(analysisDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(figuresDir, 0755); err != nil {
		return fmt.Errorf("creating figures dir: %w", err)
	}

	charts := []struct {
		name   string
		render func(*analysis.Result, string) error
	}{
		{TemporalTrendsFile, r.temporalTrends},
		{TemporalCommitmentFile, r.temporalCommitment},
		{LagardeEffectFile, r.lagardeEffect},
		{CommitmentGroupedFile, r.commitmentGrouped},
		{FirstMentionLagFile, r.firstMentionLag},
	}

	for _, chart := range charts {
		if err := chart.render(res, filepath.Join(figuresDir, chart.name)); err != nil {
			return fmt.Errorf("rendering %s: %w", chart.name, err)
		}

		r.log.Debug("chart rendered", "file", chart.name)
	}

	r.log.Info("figures written", "count", len(charts))

	return nil
}

// ratePoints converts a yearly series to plotter points, skipping null
// buckets so empty years leave gaps rather than zeros.
func ratePoints(series []analysis.YearlyPoint, fromYear int, value func(analysis.YearlyPoint) models.NullFloat) plotter.XYs {
	var xys plotter.XYs

	for _, point := range series {
		if point.Year < fromYear {
			continue
		}

		v := value(point)
		if !v.Valid {
			continue
		}

		xys = append(xys, plotter.XY{X: float64(point.Year), Y: v.Float64})
	}

	return xys
}

func maxY(series ...plotter.XYs) float64 {
	m := 0.0

	for _, xys := range series {
		for _, xy := range xys {
			if xy.Y > m {
				m = xy.Y
			}
		}
	}

	return m
}

// addRateSeries plots both corpus lines and registers them in the legend.
func addRateSeries(p *plot.Plot, speech, minute plotter.XYs) error {
	if len(speech) > 0 {
		line, points, err := seriesLine(speech, speechColor)
		if err != nil {
			return err
		}

		p.Add(line, points)
		p.Legend.Add("Speeches", line, points)
	}

	if len(minute) > 0 {
		line, points, err := seriesLine(minute, minuteColor)
		if err != nil {
			return err
		}

		p.Add(line, points)
		p.Legend.Add("Minutes", line, points)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	return nil
}

func (r *Renderer) temporalTrends(res *analysis.Result, path string) error {
	speech := ratePoints(res.YearlyRates, r.cfg.Charts.TrendsStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.SpeechRate })
	minute := ratePoints(res.YearlyRates, r.cfg.Charts.TrendsStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.MinuteRate })

	p := newPlot("Climate Communication Over Time: Speeches vs Minutes", "Year", "Climate Mention Rate (%)")

	if err := addRateSeries(p, speech, minute); err != nil {
		return err
	}

	top := maxY(speech, minute) * 1.15
	if top == 0 {
		top = 1
	}

	p.X.Min = float64(r.cfg.Charts.TrendsStartYear)
	p.X.Max = float64(r.cfg.Charts.EndYear)
	p.Y.Min = 0
	p.Y.Max = top

	var labelXYs plotter.XYs

	var labelTexts []string

	for _, ev := range eventMarkers {
		if ev.year < r.cfg.Charts.TrendsStartYear || ev.year > r.cfg.Charts.EndYear {
			continue
		}

		guide, err := guideLine(float64(ev.year), 0, float64(ev.year), top)
		if err != nil {
			return err
		}

		p.Add(guide)

		labelXYs = append(labelXYs, plotter.XY{X: float64(ev.year), Y: top * 0.95})
		labelTexts = append(labelTexts, ev.label)
	}

	if len(labelXYs) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelTexts})
		if err != nil {
			return err
		}

		p.Add(labels)
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func (r *Renderer) temporalCommitment(res *analysis.Result, path string) error {
	speech := ratePoints(res.YearlyRates, r.cfg.Charts.CommitmentStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.SpeechLevel })
	minute := ratePoints(res.YearlyRates, r.cfg.Charts.CommitmentStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.MinuteLevel })

	p := newPlot("Commitment Level Trends Over Time", "Year", "Mean Commitment Level")

	if err := addRateSeries(p, speech, minute); err != nil {
		return err
	}

	p.X.Min = float64(r.cfg.Charts.CommitmentStartYear)
	p.X.Max = float64(r.cfg.Charts.EndYear)
	p.Y.Min = 1
	p.Y.Max = 3

	// Guides at the boundaries between commitment categories.
	for _, y := range []float64{1.5, 2.5} {
		guide, err := guideLine(p.X.Min, y, p.X.Max, y)
		if err != nil {
			return err
		}

		p.Add(guide)
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// lagardeEffect renders the two-panel event chart: mention rates and
// commitment levels for the event institution, with the leadership-change
// date marked.
func (r *Renderer) lagardeEffect(res *analysis.Result, path string) error {
	appointment := r.cfg.Study.AppointmentTime()
	markerX := float64(appointment.Year()) + float64(appointment.Month()-1)/12

	speechRates := ratePoints(res.ECBYearly, r.cfg.Charts.EventStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.SpeechRate })
	minuteRates := ratePoints(res.ECBYearly, r.cfg.Charts.EventStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.MinuteRate })

	rates := newPlot("A. ECB Climate Mention Rates", "Year", "Climate Mention Rate (%)")
	if err := addRateSeries(rates, speechRates, minuteRates); err != nil {
		return err
	}

	top := maxY(speechRates, minuteRates) * 1.15
	if top == 0 {
		top = 1
	}

	rates.X.Min = float64(r.cfg.Charts.EventStartYear)
	rates.X.Max = float64(r.cfg.Charts.EndYear)
	rates.Y.Min = 0
	rates.Y.Max = top

	marker, err := guideLine(markerX, 0, markerX, top)
	if err != nil {
		return err
	}

	rates.Add(marker)

	speechLevels := ratePoints(res.ECBYearly, r.cfg.Charts.EventStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.SpeechLevel })
	minuteLevels := ratePoints(res.ECBYearly, r.cfg.Charts.EventStartYear, func(p analysis.YearlyPoint) models.NullFloat { return p.MinuteLevel })

	levels := newPlot("B. ECB Commitment Levels", "Year", "Mean Commitment Level")
	if err := addRateSeries(levels, speechLevels, minuteLevels); err != nil {
		return err
	}

	levels.X.Min = float64(r.cfg.Charts.EventStartYear)
	levels.X.Max = float64(r.cfg.Charts.EndYear)
	levels.Y.Min = 1
	levels.Y.Max = 3

	marker, err = guideLine(markerX, 1, markerX, 3)
	if err != nil {
		return err
	}

	levels.Add(marker)

	// Side-by-side panels on one page.
	canvas := vgpdf.New(12*vg.Inch, 5*vg.Inch)
	dc := draw.New(canvas)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter * 5}

	panels := [][]*plot.Plot{{rates, levels}}
	canvases := plot.Align(panels, tiles, dc)
	rates.Draw(canvases[0][0])
	levels.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := canvas.WriteTo(f); err != nil {
		return err
	}

	return f.Close()
}

func (r *Renderer) commitmentGrouped(res *analysis.Result, path string) error {
	m := res.Main

	title := "Commitment Level Distribution"
	if m.CommitmentSpeechMean != nil && m.CommitmentMinuteMean != nil {
		title = fmt.Sprintf("Mean: Speeches=%.2f, Minutes=%.2f", *m.CommitmentSpeechMean, *m.CommitmentMinuteMean)

		if m.MannWhitneyP != nil {
			title += fmt.Sprintf("    (Mann-Whitney p=%.3f)", *m.MannWhitneyP)
		}
	}

	p := newPlot(title, "Commitment Level", "Percentage of Excerpts")

	speechValues := make(plotter.Values, len(res.CommitmentDist))
	minuteValues := make(plotter.Values, len(res.CommitmentDist))
	labels := make([]string, len(res.CommitmentDist))

	for i, bin := range res.CommitmentDist {
		speechValues[i] = bin.SpeechPct
		minuteValues[i] = bin.MinutePct
		labels[i] = commitmentLabel(bin.Level)
	}

	width := vg.Points(18)

	speechBars, err := plotter.NewBarChart(speechValues, width)
	if err != nil {
		return err
	}

	speechBars.Color = speechColor
	speechBars.Offset = -width / 2

	minuteBars, err := plotter.NewBarChart(minuteValues, width)
	if err != nil {
		return err
	}

	minuteBars.Color = minuteColor
	minuteBars.Offset = width / 2

	p.Add(speechBars, minuteBars)
	p.Legend.Add(fmt.Sprintf("Speeches (n=%d)", m.CommitmentSpeechN), speechBars)
	p.Legend.Add(fmt.Sprintf("Minutes (n=%d)", m.CommitmentMinuteN), minuteBars)
	p.Legend.Top = true
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = maxBar(speechValues, minuteValues) * 1.2

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func commitmentLabel(level float64) string {
	switch level {
	case 1.0:
		return "1.0 (Observ.)"
	case 2.0:
		return "2.0 (Intent.)"
	case 3.0:
		return "3.0 (Oper.)"
	default:
		return fmt.Sprintf("%.1f", level)
	}
}

func maxBar(series ...plotter.Values) float64 {
	m := 1.0

	for _, vs := range series {
		for _, v := range vs {
			if v > m {
				m = v
			}
		}
	}

	return m
}

// firstMentionLag renders the lag lollipop: one row per institution,
// longest lag at the top, stems from zero to the lag in years.
func (r *Renderer) firstMentionLag(res *analysis.Result, path string) error {
	p := newPlot("First Mention: Speeches Lead Minutes", "Years Between First Speech and First Minutes Mention", "")

	n := len(res.Lags)

	ticks := make([]plot.Tick, 0, n)
	dots := make(plotter.XYs, 0, n)
	annotations := make([]string, 0, n)
	annotationXYs := make(plotter.XYs, 0, n)

	maxLag := 0.0

	for i, row := range res.Lags {
		y := float64(n - i) // longest lag on top

		stem, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: float64(row.LagYears), Y: y}})
		if err != nil {
			return err
		}

		stem.Color = minuteColor
		stem.Width = vg.Points(1)
		p.Add(stem)

		dots = append(dots, plotter.XY{X: float64(row.LagYears), Y: y})

		name := row.Institution
		if short, ok := shortNames[name]; ok {
			name = short
		}

		ticks = append(ticks, plot.Tick{Value: y, Label: name})

		annotationXYs = append(annotationXYs, plotter.XY{X: float64(row.LagYears) + 0.8, Y: y})
		annotations = append(annotations, fmt.Sprintf("%dy (%d-%d)", row.LagYears, row.FirstSpeech, row.FirstMinute))

		if float64(row.LagYears) > maxLag {
			maxLag = float64(row.LagYears)
		}
	}

	if n > 0 {
		scatter, err := plotter.NewScatter(dots)
		if err != nil {
			return err
		}

		scatter.GlyphStyle.Color = speechColor
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: annotationXYs, Labels: annotations})
		if err != nil {
			return err
		}

		p.Add(labels)
	}

	if res.Main.FirstMentionLagMeanYears != nil {
		meanLine, err := guideLine(*res.Main.FirstMentionLagMeanYears, 0, *res.Main.FirstMentionLagMeanYears, float64(n)+0.5)
		if err != nil {
			return err
		}

		p.Add(meanLine)
	}

	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Min = 0
	p.Y.Max = float64(n) + 1
	p.X.Min = -1
	p.X.Max = maxLag + 8

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
