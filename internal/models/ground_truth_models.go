package models

// GroundTruthRecord is one line of a ground-truth corpus: id, an unused
// label column and the text to be scored.
type GroundTruthRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type PolarityScore struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// AnnotatedRecord is what gets written back out, one per input line.
type AnnotatedRecord struct {
	ID    string        `json:"id"`
	Score PolarityScore `json:"score"`
	Text  string        `json:"text"`
}
