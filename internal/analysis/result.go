package analysis

import (
	"cbclimate/internal/models"
)

// MainNumbers is the structured numeric summary of the study, marshalled to
// main_numbers.json. Fields are declared in key order so the file is
// byte-identical across runs; nullable metrics marshal as JSON null.
type MainNumbers struct {
	CommitmentMinuteMean *float64 `json:"commitment_minute_mean"`
	CommitmentMinuteN    int      `json:"commitment_minute_n"`
	CommitmentSpeechMean *float64 `json:"commitment_speech_mean"`
	CommitmentSpeechN    int      `json:"commitment_speech_n"`

	ECBLagardeAppointmentDateMarker           string   `json:"ecb_lagarde_appointment_date_marker"`
	ECBLagardeCountWindowStart                string   `json:"ecb_lagarde_count_window_start"`
	ECBLagardeDocs                            int      `json:"ecb_lagarde_docs"`
	ECBLagardeRateIfStrictAppointmentWindowPct *float64 `json:"ecb_lagarde_rate_if_strict_appointment_window_pct"`
	ECBLagardeRatePct                         *float64 `json:"ecb_lagarde_rate_pct"`
	ECBLagardeTotal                           int      `json:"ecb_lagarde_total"`
	ECBLagardeTotalIfStrictAppointmentWindow  int      `json:"ecb_lagarde_total_if_strict_appointment_window"`

	FirstMentionLagMeanYears *float64 `json:"first_mention_lag_mean_years"`
	GapRatio                 *float64 `json:"gap_ratio"`

	LLMEnsembleLabels int `json:"llm_ensemble_labels"`
	LLMOpenAILabels   int `json:"llm_openai_labels"`

	MannWhitneyP *float64 `json:"mannwhitney_p"`
	MannWhitneyU *float64 `json:"mannwhitney_u"`

	MinuteFalsePositiveRatePct   *float64 `json:"minute_false_positive_rate_pct"`
	MinuteInstitutions           int      `json:"minute_institutions"`
	MinuteInstitutionsWithClimate int     `json:"minute_institutions_with_climate"`
	MinuteLanguages              int      `json:"minute_languages"`
	MinutePeriodEnd              int      `json:"minute_period_end"`
	MinutePeriodStart            int      `json:"minute_period_start"`
	MinuteRatePct                *float64 `json:"minute_rate_pct"`
	MinuteTotal                  int      `json:"minute_total"`
	MinuteVerifiedExcerptsFileRows int    `json:"minute_verified_excerpts_file_rows"`

	PairedTP    *float64 `json:"paired_t_p"`
	PairedTStat *float64 `json:"paired_t_stat"`

	SpeechFalsePositiveRatePct                 *float64 `json:"speech_false_positive_rate_pct"`
	SpeechInstitutionsCoreSample               int      `json:"speech_institutions_core_sample"`
	SpeechInstitutionsWithClimateSubmissionRule int     `json:"speech_institutions_with_climate_submission_rule"`
	SpeechPeriodEnd                            int      `json:"speech_period_end"`
	SpeechPeriodStart                          int      `json:"speech_period_start"`
	SpeechRateCoreDenomPct                     *float64 `json:"speech_rate_core_denom_pct"`
	SpeechTotalCoreSample                      int      `json:"speech_total_core_sample"`
	SpeechVerifiedExcerptsFileRows             int      `json:"speech_verified_excerpts_file_rows"`

	Stage0MinuteDocs     int `json:"stage0_minute_docs"`
	Stage0SpeechDocs     int `json:"stage0_speech_docs"`
	Stage1MinuteDocs     int `json:"stage1_minute_docs"`
	Stage1MinuteExcerpts int `json:"stage1_minute_excerpts"`
	Stage1SpeechDocs     int `json:"stage1_speech_docs"`
	Stage1SpeechExcerpts int `json:"stage1_speech_excerpts"`

	VerifiedMinuteDocs     int `json:"verified_minute_docs"`
	VerifiedMinuteExcerpts int `json:"verified_minute_excerpts"`
	VerifiedSpeechDocs     int `json:"verified_speech_docs"`
	VerifiedSpeechExcerpts int `json:"verified_speech_excerpts"`

	WithinInstMinuteRateMaxPct *float64 `json:"within_inst_minute_rate_max_pct"`
	WithinInstMinuteRateMinPct *float64 `json:"within_inst_minute_rate_min_pct"`
	WithinInstMinuteRatePct    *float64 `json:"within_inst_minute_rate_pct"`
	WithinInstSpeechRateMaxPct *float64 `json:"within_inst_speech_rate_max_pct"`
	WithinInstSpeechRateMinPct *float64 `json:"within_inst_speech_rate_min_pct"`
	WithinInstSpeechRatePct    *float64 `json:"within_inst_speech_rate_pct"`
}

// InstitutionRates is one row of within_institution_rates.csv: qualifying
// document rates for an institution present in both corpora.
type InstitutionRates struct {
	Institution string  `csv:"institution"`
	SpeechRate  float64 `csv:"speech_rate"`
	MinuteRate  float64 `csv:"minute_rate"`
}

// YearlyPoint is one row of a yearly series file. Null cells mean the
// bucket had no observations (never zero).
type YearlyPoint struct {
	Year        int              `csv:"year"`
	SpeechRate  models.NullFloat `csv:"speech_rate"`
	MinuteRate  models.NullFloat `csv:"minute_rate"`
	SpeechLevel models.NullFloat `csv:"speech_level"`
	MinuteLevel models.NullFloat `csv:"minute_level"`
}

// CommitmentBin is one row of commitment_distribution.csv: the share of
// excerpts at one commitment level, per corpus.
type CommitmentBin struct {
	Level     float64 `csv:"level"`
	SpeechPct float64 `csv:"speech_pct"`
	MinutePct float64 `csv:"minute_pct"`
}

// FirstMentionLag is one row of first_mention_lag.csv: years between an
// institution's first qualifying speech and first qualifying minute.
type FirstMentionLag struct {
	Institution string `csv:"institution"`
	FirstSpeech int    `csv:"first_speech"`
	FirstMinute int    `csv:"first_minute"`
	LagYears    int    `csv:"lag_years"`
}

// HeterogeneityRow is one row of institution_heterogeneity.csv: the
// two-sided pairing of climate-active institutions against institutions
// with no climate content. Null cells pad the shorter side.
type HeterogeneityRow struct {
	ClimateInstitution    string         `csv:"climate_institution"`
	ClimateDocs           models.NullInt `csv:"climate_docs"`
	ClimateExcerpts       models.NullInt `csv:"climate_excerpts"`
	ClimatePeriod         string         `csv:"climate_period"`
	NoClimateInstitution  string         `csv:"no_climate_institution"`
	NoClimateTotalMinutes models.NullInt `csv:"no_climate_total_minutes"`
}

// Result is everything the analysis stage computes. Downstream stages use
// only the persisted form of it.
type Result struct {
	Main              MainNumbers
	WithinInstitution []InstitutionRates
	YearlyRates       []YearlyPoint
	ECBYearly         []YearlyPoint
	CommitmentDist    []CommitmentBin
	Lags              []FirstMentionLag
	Heterogeneity     []HeterogeneityRow
}
