// Package analysis computes the derived numeric findings of the study:
// mention rates, commitment levels, first-mention lags, event-window
// effects, and the inferential statistics comparing the two corpora.
//
// All aggregation iterates institutions and years in ascending order so
// repeated runs over identical input produce byte-identical output.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"cbclimate/internal/config"
	"cbclimate/internal/logger"
	"cbclimate/internal/models"
)

// commitmentLevels are the five ordinal commitment categories of the
// classification scheme (observational, intentional, operational and the
// half steps between them).
var commitmentLevels = []float64{1.0, 1.5, 2.0, 2.5, 3.0}

// Engine computes every derived metric of the study from a loaded dataset.
type Engine struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates an analysis engine.
func New(cfg *config.Config, log *logger.Logger) *Engine {
	return &Engine{cfg: cfg, log: log}
}

// Run computes the full result set. Empty buckets yield null metrics, never
// zeros and never errors.
func (e *Engine) Run(ds *models.Dataset) *Result {
	res := &Result{}

	speechVerified, minuteVerified := verifiedIDs(ds)

	e.corpusCounts(ds, speechVerified, minuteVerified, res)
	e.withinInstitution(ds, speechVerified, minuteVerified, res)
	e.inference(ds, res)
	e.yearlySeries(ds, res)
	e.eventSeries(ds, res)
	e.commitmentDistribution(ds, res)
	e.firstMentionLags(ds, res)
	e.eventWindows(ds, res)
	e.heterogeneity(ds, res)

	e.log.Info("analysis complete",
		"within_institution_rows", len(res.WithinInstitution),
		"yearly_points", len(res.YearlyRates),
		"lag_rows", len(res.Lags),
	)

	return res
}

// verifiedIDs collects the qualifying document IDs per corpus: a document
// qualifies when at least one classified excerpt references it.
func verifiedIDs(ds *models.Dataset) (map[int]bool, map[int]bool) {
	speech := make(map[int]bool)
	minute := make(map[int]bool)

	for _, ex := range ds.Excerpts {
		id := ex.DocID()
		if !id.Valid {
			continue
		}

		switch ex.DocType {
		case models.DocTypeSpeech:
			speech[id.Int] = true
		case models.DocTypeMinute:
			minute[id.Int] = true
		}
	}

	return speech, minute
}

func (e *Engine) corpusCounts(ds *models.Dataset, speechVerified, minuteVerified map[int]bool, res *Result) {
	m := &res.Main

	// Core speech sample excludes supervisory and multilateral bodies.
	coreTotal := 0
	coreInstitutions := make(map[string]bool)

	for _, s := range ds.Speeches {
		if e.cfg.Study.IsExcluded(s.InstitutionHarmonised) {
			continue
		}

		coreTotal++
		coreInstitutions[s.InstitutionHarmonised] = true
	}

	m.SpeechTotalCoreSample = coreTotal
	m.SpeechInstitutionsCoreSample = len(coreInstitutions)
	m.SpeechPeriodStart, m.SpeechPeriodEnd = yearBounds(ds.Speeches, func(s models.Speech) int { return s.Year })

	minuteInstitutions := make(map[string]bool)
	minuteLanguages := make(map[string]bool)

	for _, mn := range ds.Minutes {
		if mn.Institution != "" {
			minuteInstitutions[mn.Institution] = true
		}

		if mn.Language != "" {
			minuteLanguages[mn.Language] = true
		}
	}

	m.MinuteTotal = len(ds.Minutes)
	m.MinuteInstitutions = len(minuteInstitutions)
	m.MinuteLanguages = len(minuteLanguages)
	m.MinutePeriodStart, m.MinutePeriodEnd = yearBounds(ds.Minutes, func(mn models.Minute) int { return mn.Year })

	for _, s := range ds.Speeches {
		if s.HasClimate {
			m.Stage0SpeechDocs++
		}
	}

	for _, mn := range ds.Minutes {
		if mn.HasClimate {
			m.Stage0MinuteDocs++
		}
	}

	stage1SpeechDocs := make(map[int]bool)
	for _, r := range ds.Stage1Speeches {
		stage1SpeechDocs[r.SpeechID] = true
	}

	stage1MinuteDocs := make(map[int]bool)
	for _, r := range ds.Stage1Minutes {
		stage1MinuteDocs[r.MinuteID] = true
	}

	m.Stage1SpeechDocs = len(stage1SpeechDocs)
	m.Stage1MinuteDocs = len(stage1MinuteDocs)
	m.Stage1SpeechExcerpts = len(ds.Stage1Speeches)
	m.Stage1MinuteExcerpts = len(ds.Stage1Minutes)

	m.VerifiedSpeechDocs = len(speechVerified)
	m.VerifiedMinuteDocs = len(minuteVerified)

	speechExcerptInstitutions := make(map[string]bool)
	minuteExcerptInstitutions := make(map[string]bool)

	for _, ex := range ds.Excerpts {
		switch ex.DocType {
		case models.DocTypeSpeech:
			m.VerifiedSpeechExcerpts++

			if ex.Institution != "" {
				speechExcerptInstitutions[e.cfg.Study.HarmoniseName(ex.Institution)] = true
			}
		case models.DocTypeMinute:
			m.VerifiedMinuteExcerpts++

			if ex.Institution != "" {
				minuteExcerptInstitutions[ex.Institution] = true
			}
		}

		if ex.OpenAILevel.Valid {
			m.LLMOpenAILabels++
		}

		if ex.EnsembleLevel.Valid {
			m.LLMEnsembleLabels++
		}
	}

	m.SpeechInstitutionsWithClimateSubmissionRule = len(speechExcerptInstitutions)
	m.MinuteInstitutionsWithClimate = len(minuteExcerptInstitutions)

	// A stage-1 hit that no verified excerpt confirms is a false positive.
	if m.Stage1SpeechDocs > 0 {
		m.SpeechFalsePositiveRatePct = e.round(100 * (1 - float64(m.VerifiedSpeechDocs)/float64(m.Stage1SpeechDocs)))
	}

	if m.Stage1MinuteDocs > 0 {
		m.MinuteFalsePositiveRatePct = e.round(100 * (1 - float64(m.VerifiedMinuteDocs)/float64(m.Stage1MinuteDocs)))
	}

	m.SpeechRateCoreDenomPct = e.pct(m.VerifiedSpeechDocs, coreTotal)
	m.MinuteRatePct = e.pct(m.VerifiedMinuteDocs, m.MinuteTotal)

	if coreTotal > 0 && m.MinuteTotal > 0 && m.VerifiedMinuteDocs > 0 {
		speechRate := float64(m.VerifiedSpeechDocs) / float64(coreTotal)
		minuteRate := float64(m.VerifiedMinuteDocs) / float64(m.MinuteTotal)
		m.GapRatio = e.round(speechRate / minuteRate)
	}

	m.SpeechVerifiedExcerptsFileRows = len(ds.VerifiedSpeeches)
	m.MinuteVerifiedExcerptsFileRows = len(ds.VerifiedMinutes)
}

// withinInstitution computes qualifying-document rates per institution
// present in both corpora, and the cross-institution heterogeneity summary
// (min/max/mean) over them.
func (e *Engine) withinInstitution(ds *models.Dataset, speechVerified, minuteVerified map[int]bool, res *Result) {
	speechTotal := make(map[string]int)
	speechQual := make(map[string]int)

	for _, s := range ds.Speeches {
		if s.Institution == "" {
			continue
		}

		speechTotal[s.Institution]++

		if speechVerified[s.SpeechID] {
			speechQual[s.Institution]++
		}
	}

	minuteTotal := make(map[string]int)
	minuteQual := make(map[string]int)

	for _, mn := range ds.Minutes {
		if mn.Institution == "" {
			continue
		}

		minuteTotal[mn.Institution]++

		if minuteVerified[mn.MinuteID] {
			minuteQual[mn.Institution]++
		}
	}

	for _, inst := range sortedKeys(minuteTotal) {
		st := speechTotal[inst]
		mt := minuteTotal[inst]

		if st == 0 || mt == 0 {
			continue
		}

		res.WithinInstitution = append(res.WithinInstitution, InstitutionRates{
			Institution: inst,
			SpeechRate:  100 * float64(speechQual[inst]) / float64(st),
			MinuteRate:  100 * float64(minuteQual[inst]) / float64(mt),
		})
	}

	if len(res.WithinInstitution) == 0 {
		return
	}

	m := &res.Main

	speechRates := make([]float64, len(res.WithinInstitution))
	minuteRates := make([]float64, len(res.WithinInstitution))

	for i, row := range res.WithinInstitution {
		speechRates[i] = row.SpeechRate
		minuteRates[i] = row.MinuteRate
	}

	m.WithinInstSpeechRatePct = e.round(mean(speechRates))
	m.WithinInstMinuteRatePct = e.round(mean(minuteRates))
	m.WithinInstSpeechRateMinPct = e.round(minOf(speechRates))
	m.WithinInstSpeechRateMaxPct = e.round(maxOf(speechRates))
	m.WithinInstMinuteRateMinPct = e.round(minOf(minuteRates))
	m.WithinInstMinuteRateMaxPct = e.round(maxOf(minuteRates))
}

// inference runs the paired t-test over within-institution rates and the
// Mann-Whitney test over commitment levels. Undefined tests stay null.
func (e *Engine) inference(ds *models.Dataset, res *Result) {
	m := &res.Main

	speechRates := make([]float64, len(res.WithinInstitution))
	minuteRates := make([]float64, len(res.WithinInstitution))

	for i, row := range res.WithinInstitution {
		speechRates[i] = row.SpeechRate
		minuteRates[i] = row.MinuteRate
	}

	if t, p, ok := PairedTTest(speechRates, minuteRates); ok {
		m.PairedTStat = f64(roundTo(t, 2))
		m.PairedTP = f64(roundTo(p, 3))
	}

	speechLevels := levels(ds.Excerpts, models.DocTypeSpeech)
	minuteLevels := levels(ds.Excerpts, models.DocTypeMinute)

	if u, p, ok := MannWhitneyU(speechLevels, minuteLevels); ok {
		m.MannWhitneyU = f64(u)
		m.MannWhitneyP = f64(roundTo(p, 3))
	}
}

// yearlySeries computes the full-corpus yearly mention rates and mean
// commitment levels backing the temporal charts.
func (e *Engine) yearlySeries(ds *models.Dataset, res *Result) {
	speechClimate := distinctByYear(ds.VerifiedSpeeches, func(r models.VerifiedSpeech) (int, int) { return r.Year, r.SpeechID })
	minuteClimate := distinctByYear(ds.VerifiedMinutes, func(r models.VerifiedMinute) (int, int) { return r.Year, r.MinuteID })

	speechTotal := make(map[int]int)
	for _, s := range ds.Speeches {
		speechTotal[s.Year]++
	}

	minuteTotal := make(map[int]int)
	for _, mn := range ds.Minutes {
		minuteTotal[mn.Year]++
	}

	start := e.cfg.Charts.TrendsStartYear
	if e.cfg.Charts.CommitmentStartYear < start {
		start = e.cfg.Charts.CommitmentStartYear
	}

	for year := start; year <= e.cfg.Charts.EndYear; year++ {
		point := YearlyPoint{Year: year}

		point.SpeechRate = rate(len(speechClimate[year]), speechTotal[year])
		point.MinuteRate = rate(len(minuteClimate[year]), minuteTotal[year])
		point.SpeechLevel = meanLevelForYear(ds.Excerpts, models.DocTypeSpeech, "", year)
		point.MinuteLevel = meanLevelForYear(ds.Excerpts, models.DocTypeMinute, "", year)

		res.YearlyRates = append(res.YearlyRates, point)
	}
}

// eventSeries computes the same yearly series restricted to the event
// institution (the corpus backing the leadership-change chart).
func (e *Engine) eventSeries(ds *models.Dataset, res *Result) {
	inst := e.cfg.Study.EventInstitution

	speechTotal := make(map[int]int)
	minuteTotal := make(map[int]int)

	for _, s := range ds.Speeches {
		if s.Institution == inst {
			speechTotal[s.Year]++
		}
	}

	for _, mn := range ds.Minutes {
		if mn.Institution == inst {
			minuteTotal[mn.Year]++
		}
	}

	speechClimate := make(map[int]map[int]bool)
	minuteClimate := make(map[int]map[int]bool)

	for _, ex := range ds.Excerpts {
		if ex.Institution != inst || !ex.Year.Valid {
			continue
		}

		id := ex.DocID()
		if !id.Valid {
			continue
		}

		target := speechClimate
		if ex.DocType == models.DocTypeMinute {
			target = minuteClimate
		}

		if target[ex.Year.Int] == nil {
			target[ex.Year.Int] = make(map[int]bool)
		}

		target[ex.Year.Int][id.Int] = true
	}

	for year := e.cfg.Charts.EventStartYear; year <= e.cfg.Charts.EndYear; year++ {
		point := YearlyPoint{Year: year}

		point.SpeechRate = rate(len(speechClimate[year]), speechTotal[year])
		point.MinuteRate = rate(len(minuteClimate[year]), minuteTotal[year])
		point.SpeechLevel = meanLevelForYear(ds.Excerpts, models.DocTypeSpeech, inst, year)
		point.MinuteLevel = meanLevelForYear(ds.Excerpts, models.DocTypeMinute, inst, year)

		res.ECBYearly = append(res.ECBYearly, point)
	}
}

// commitmentDistribution computes the share of excerpts at each commitment
// level, per corpus, plus the per-corpus sample sizes and means.
func (e *Engine) commitmentDistribution(ds *models.Dataset, res *Result) {
	speechLevels := levels(ds.Excerpts, models.DocTypeSpeech)
	minuteLevels := levels(ds.Excerpts, models.DocTypeMinute)

	m := &res.Main
	m.CommitmentSpeechN = len(speechLevels)
	m.CommitmentMinuteN = len(minuteLevels)

	if len(speechLevels) > 0 {
		m.CommitmentSpeechMean = f64(roundTo(mean(speechLevels), 2))
	}

	if len(minuteLevels) > 0 {
		m.CommitmentMinuteMean = f64(roundTo(mean(minuteLevels), 2))
	}

	for _, level := range commitmentLevels {
		bin := CommitmentBin{Level: level}

		if len(speechLevels) > 0 {
			bin.SpeechPct = deref(e.round(100 * share(speechLevels, level)))
		}

		if len(minuteLevels) > 0 {
			bin.MinutePct = deref(e.round(100 * share(minuteLevels, level)))
		}

		res.CommitmentDist = append(res.CommitmentDist, bin)
	}
}

// firstMentionLags computes, per institution present in both corpora, the
// gap between the first qualifying speech and the first qualifying minute.
// Institutions missing a first mention in either corpus are omitted and do
// not affect the remaining rows.
func (e *Engine) firstMentionLags(ds *models.Dataset, res *Result) {
	firstSpeech := make(map[string]int)
	firstMinute := make(map[string]int)

	for _, ex := range ds.Excerpts {
		if ex.Institution == "" {
			continue
		}

		id := ex.DocID()
		if !id.Valid {
			continue
		}

		switch ex.DocType {
		case models.DocTypeSpeech:
			if id.Int < 0 || id.Int >= len(ds.Speeches) {
				continue
			}

			recordMinYear(firstSpeech, ex.Institution, ds.Speeches[id.Int].Year)
		case models.DocTypeMinute:
			if id.Int < 0 || id.Int >= len(ds.Minutes) {
				continue
			}

			recordMinYear(firstMinute, ex.Institution, ds.Minutes[id.Int].Year)
		}
	}

	for _, inst := range sortedKeys(firstSpeech) {
		mn, ok := firstMinute[inst]
		if !ok {
			continue
		}

		sp := firstSpeech[inst]

		res.Lags = append(res.Lags, FirstMentionLag{
			Institution: inst,
			FirstSpeech: sp,
			FirstMinute: mn,
			LagYears:    mn - sp,
		})
	}

	// Longest lags first; institution name breaks ties.
	sort.SliceStable(res.Lags, func(i, j int) bool {
		if res.Lags[i].LagYears != res.Lags[j].LagYears {
			return res.Lags[i].LagYears > res.Lags[j].LagYears
		}

		return res.Lags[i].Institution < res.Lags[j].Institution
	})

	if len(res.Lags) > 0 {
		total := 0
		for _, row := range res.Lags {
			total += row.LagYears
		}

		res.Main.FirstMentionLagMeanYears = f64(roundTo(float64(total)/float64(len(res.Lags)), 1))
	}
}

// eventWindows counts qualifying minutes of the event institution inside
// the count window and the strict appointment window.
func (e *Engine) eventWindows(ds *models.Dataset, res *Result) {
	inst := e.cfg.Study.EventInstitution

	qualifying := make(map[int]bool)

	for _, ex := range ds.Excerpts {
		if ex.DocType != models.DocTypeMinute || ex.Institution != inst {
			continue
		}

		if ex.MinuteID.Valid {
			qualifying[ex.MinuteID.Int] = true
		}
	}

	countWindow := e.cfg.Study.CountWindowTime()
	appointment := e.cfg.Study.AppointmentTime()

	var windowTotal, windowDocs, strictTotal, strictDocs int

	for _, mn := range ds.Minutes {
		if mn.Institution != inst || !mn.Date.Valid {
			continue
		}

		if !mn.Date.Time.Before(countWindow) {
			windowTotal++

			if qualifying[mn.MinuteID] {
				windowDocs++
			}
		}

		if !mn.Date.Time.Before(appointment) {
			strictTotal++

			if qualifying[mn.MinuteID] {
				strictDocs++
			}
		}
	}

	m := &res.Main
	m.ECBLagardeCountWindowStart = e.cfg.Study.CountWindowStart
	m.ECBLagardeAppointmentDateMarker = e.cfg.Study.AppointmentDate
	m.ECBLagardeDocs = windowDocs
	m.ECBLagardeTotal = windowTotal
	m.ECBLagardeRatePct = e.pct(windowDocs, windowTotal)
	m.ECBLagardeTotalIfStrictAppointmentWindow = strictTotal
	m.ECBLagardeRateIfStrictAppointmentWindowPct = e.pct(strictDocs, strictTotal)
}

// heterogeneity builds the two-sided institution breakdown: climate-active
// institutions (docs, excerpts, active period) against institutions whose
// minutes never mention climate.
func (e *Engine) heterogeneity(ds *models.Dataset, res *Result) {
	type climateAgg struct {
		docs     map[int]bool
		excerpts int
		minYear  int
		maxYear  int
	}

	climate := make(map[string]*climateAgg)

	for _, ex := range ds.Excerpts {
		if ex.DocType != models.DocTypeMinute || ex.Institution == "" || !ex.MinuteID.Valid {
			continue
		}

		agg := climate[ex.Institution]
		if agg == nil {
			agg = &climateAgg{docs: make(map[int]bool)}
			climate[ex.Institution] = agg
		}

		agg.excerpts++

		id := ex.MinuteID.Int
		if id < 0 || id >= len(ds.Minutes) {
			continue
		}

		if !agg.docs[id] {
			agg.docs[id] = true

			year := ds.Minutes[id].Year
			if agg.minYear == 0 || year < agg.minYear {
				agg.minYear = year
			}

			if year > agg.maxYear {
				agg.maxYear = year
			}
		}
	}

	type leftRow struct {
		institution string
		docs        int
		excerpts    int
		period      string
	}

	left := make([]leftRow, 0, len(climate))

	for _, inst := range sortedKeys(climate) {
		agg := climate[inst]

		period := ""
		if agg.minYear != 0 {
			period = fmt.Sprintf("%d-%d", agg.minYear, agg.maxYear)
		}

		left = append(left, leftRow{
			institution: inst,
			docs:        len(agg.docs),
			excerpts:    agg.excerpts,
			period:      period,
		})
	}

	sort.SliceStable(left, func(i, j int) bool {
		if left[i].docs != left[j].docs {
			return left[i].docs > left[j].docs
		}

		return left[i].institution < left[j].institution
	})

	minuteTotal := make(map[string]int)

	for _, mn := range ds.Minutes {
		if mn.Institution == "" {
			continue
		}

		if _, hasClimate := climate[mn.Institution]; hasClimate {
			continue
		}

		minuteTotal[mn.Institution]++
	}

	type rightRow struct {
		institution string
		total       int
	}

	right := make([]rightRow, 0, len(minuteTotal))

	for _, inst := range sortedKeys(minuteTotal) {
		right = append(right, rightRow{institution: inst, total: minuteTotal[inst]})
	}

	sort.SliceStable(right, func(i, j int) bool {
		if right[i].total != right[j].total {
			return right[i].total > right[j].total
		}

		return right[i].institution < right[j].institution
	})

	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	var docsTotal, excerptsTotal, minutesTotal int

	for i := 0; i < n; i++ {
		row := HeterogeneityRow{}

		if i < len(left) {
			row.ClimateInstitution = left[i].institution
			row.ClimateDocs = models.NullInt{Int: left[i].docs, Valid: true}
			row.ClimateExcerpts = models.NullInt{Int: left[i].excerpts, Valid: true}
			row.ClimatePeriod = left[i].period
			docsTotal += left[i].docs
			excerptsTotal += left[i].excerpts
		}

		if i < len(right) {
			row.NoClimateInstitution = right[i].institution
			row.NoClimateTotalMinutes = models.NullInt{Int: right[i].total, Valid: true}
			minutesTotal += right[i].total
		}

		res.Heterogeneity = append(res.Heterogeneity, row)
	}

	res.Heterogeneity = append(res.Heterogeneity, HeterogeneityRow{
		ClimateInstitution:    "TOTAL",
		ClimateDocs:           models.NullInt{Int: docsTotal, Valid: true},
		ClimateExcerpts:       models.NullInt{Int: excerptsTotal, Valid: true},
		NoClimateInstitution:  "TOTAL",
		NoClimateTotalMinutes: models.NullInt{Int: minutesTotal, Valid: true},
	})
}

// pct returns 100*num/den rounded to the configured precision, or null for
// an empty bucket.
func (e *Engine) pct(num, den int) *float64 {
	if den == 0 {
		return nil
	}

	return e.round(100 * float64(num) / float64(den))
}

func (e *Engine) round(x float64) *float64 {
	return f64(roundTo(x, e.cfg.Output.RateDecimals))
}

// rate is pct without rounding, for the series files the charts consume.
func rate(num, den int) models.NullFloat {
	if den == 0 {
		return models.NullFloat{}
	}

	return models.NullFloat{Float64: 100 * float64(num) / float64(den), Valid: true}
}

// levels extracts the non-null ensemble levels for one document type, in
// file order.
func levels(excerpts []models.Excerpt, docType string) []float64 {
	var out []float64

	for _, ex := range excerpts {
		if ex.DocType == docType && ex.EnsembleLevel.Valid {
			out = append(out, ex.EnsembleLevel.Float64)
		}
	}

	return out
}

// meanLevelForYear averages the ensemble levels of one document type in one
// year, optionally restricted to an institution. Null when the bucket is
// empty.
func meanLevelForYear(excerpts []models.Excerpt, docType, institution string, year int) models.NullFloat {
	var sum float64

	count := 0

	for _, ex := range excerpts {
		if ex.DocType != docType || !ex.EnsembleLevel.Valid || !ex.Year.Valid || ex.Year.Int != year {
			continue
		}

		if institution != "" && ex.Institution != institution {
			continue
		}

		sum += ex.EnsembleLevel.Float64
		count++
	}

	if count == 0 {
		return models.NullFloat{}
	}

	return models.NullFloat{Float64: sum / float64(count), Valid: true}
}

// distinctByYear collects distinct document IDs per year.
func distinctByYear[T any](rows []T, key func(T) (year, id int)) map[int]map[int]bool {
	out := make(map[int]map[int]bool)

	for _, row := range rows {
		year, id := key(row)
		if out[year] == nil {
			out[year] = make(map[int]bool)
		}

		out[year][id] = true
	}

	return out
}

func recordMinYear(m map[string]int, inst string, year int) {
	if cur, ok := m[inst]; !ok || year < cur {
		m[inst] = year
	}
}

func yearBounds[T any](rows []T, year func(T) int) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}

	lo, hi := year(rows[0]), year(rows[0])

	for _, row := range rows[1:] {
		y := year(row)
		if y < lo {
			lo = y
		}

		if y > hi {
			hi = y
		}
	}

	return lo, hi
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

func share(xs []float64, level float64) float64 {
	count := 0
	for _, x := range xs {
		if x == level {
			count++
		}
	}

	return float64(count) / float64(len(xs))
}

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(x*pow) / pow
}

func f64(x float64) *float64 {
	return &x
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
