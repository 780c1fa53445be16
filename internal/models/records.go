// Package models defines the immutable record types of the replication corpus.
package models

// DocType values used by the classified excerpt file.
const (
	DocTypeSpeech = "speech"
	DocTypeMinute = "minute"
)

// Speech is one row of the raw speech corpus. SpeechID is the zero-based
// row position, assigned at load time; the derivative files reference it.
type Speech struct {
	SpeechID              int    `csv:"-"`
	Year                  int    `csv:"year"`
	Institution           string `csv:"institution"`
	HasClimate            Flag   `csv:"has_climate"`
	InstitutionHarmonised string `csv:"institution_harmonised"`
}

// Minute is one row of the raw policy-meeting minutes corpus.
type Minute struct {
	MinuteID    int    `csv:"-"`
	Date        Date   `csv:"Date"`
	Year        int    `csv:"year"`
	Institution string `csv:"institution"`
	Language    string `csv:"Language"`
	HasClimate  Flag   `csv:"has_climate"`
}

// Stage1Speech is one keyword-filtered speech excerpt.
type Stage1Speech struct {
	SpeechID int `csv:"speech_id"`
}

// Stage1Minute is one keyword-filtered minute excerpt.
type Stage1Minute struct {
	MinuteID int `csv:"minute_id"`
}

// VerifiedSpeech is one verified speech excerpt row.
type VerifiedSpeech struct {
	Year     int `csv:"year"`
	SpeechID int `csv:"speech_id"`
}

// VerifiedMinute is one verified minute excerpt row.
type VerifiedMinute struct {
	Year     int `csv:"year"`
	MinuteID int `csv:"minute_id"`
}

// Excerpt is one classified climate excerpt. Exactly one of SpeechID and
// MinuteID is set, according to DocType.
type Excerpt struct {
	DocType       string    `csv:"doc_type"`
	SpeechID      NullInt   `csv:"speech_id"`
	MinuteID      NullInt   `csv:"minute_id"`
	Institution   string    `csv:"institution"`
	EnsembleLevel NullFloat `csv:"ensemble_level"`
	OpenAILevel   NullFloat `csv:"openai_level"`
	Year          NullInt   `csv:"year"`
}

// DocID returns the identifier matching the excerpt's document type.
func (e Excerpt) DocID() NullInt {
	if e.DocType == DocTypeSpeech {
		return e.SpeechID
	}

	return e.MinuteID
}

// Dataset groups the seven loaded tables. Immutable after load.
type Dataset struct {
	Speeches         []Speech
	Minutes          []Minute
	Stage1Speeches   []Stage1Speech
	Stage1Minutes    []Stage1Minute
	VerifiedSpeeches []VerifiedSpeech
	VerifiedMinutes  []VerifiedMinute
	Excerpts         []Excerpt
}
