package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FIELD_SEPARATOR         = "\t"
	GROUND_TRUTH_FIELDS     = 3
	ANNOTATED_RECORD_FIELDS = 6
)

// SplitFields splits a raw line (line terminator included or not) on tabs
// and reports whether it carries exactly want fields.
func SplitFields(line string, want int) ([]string, bool) {
	fields := strings.Split(line, FIELD_SEPARATOR)
	return fields, len(fields) == want
}

// ParseGroundTruthLine splits a ground-truth line. The text field is
// returned untouched, trailing newline included; cleaning is left to the
// caller. The returned int is the number of fields found.
func ParseGroundTruthLine(line string) (GroundTruthRecord, int, bool) {
	fields, ok := SplitFields(line, GROUND_TRUTH_FIELDS)
	if !ok {
		return GroundTruthRecord{}, len(fields), false
	}
	return GroundTruthRecord{
		ID:    fields[0],
		Label: fields[1],
		Text:  fields[2],
	}, len(fields), true
}

// FormatScore renders a score the way the reference ground-truth files do:
// the shortest decimal that round-trips, always with a fractional part.
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Line serialises the record as a newline-terminated TSV line.
func (r AnnotatedRecord) Line() string {
	var b strings.Builder
	b.WriteString(r.ID)
	for _, v := range []float64{r.Score.Negative, r.Score.Neutral, r.Score.Positive, r.Score.Compound} {
		b.WriteString(FIELD_SEPARATOR)
		b.WriteString(FormatScore(v))
	}
	b.WriteString(FIELD_SEPARATOR)
	b.WriteString(r.Text)
	b.WriteByte('\n')
	return b.String()
}

// ParseAnnotatedLine reads back a line produced by AnnotatedRecord.Line.
// The returned int is the number of fields found.
func ParseAnnotatedLine(line string) (AnnotatedRecord, int, error) {
	line = strings.TrimRight(line, "\r\n")
	fields, ok := SplitFields(line, ANNOTATED_RECORD_FIELDS)
	if !ok {
		return AnnotatedRecord{}, len(fields), fmt.Errorf("expected %d fields, got %d", ANNOTATED_RECORD_FIELDS, len(fields))
	}

	var values [4]float64
	for i := range values {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return AnnotatedRecord{}, len(fields), fmt.Errorf("field %d: %w", i+2, err)
		}
		values[i] = v
	}

	return AnnotatedRecord{
		ID: fields[0],
		Score: PolarityScore{
			Negative: values[0],
			Neutral:  values[1],
			Positive: values[2],
			Compound: values[3],
		},
		Text: fields[5],
	}, len(fields), nil
}

// DecimalPlaces is the number of fractional digits FormatScore emits for v.
func DecimalPlaces(v float64) int {
	s := FormatScore(v)
	return len(s) - strings.IndexByte(s, '.') - 1
}
