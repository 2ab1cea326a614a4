package verify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spacesedan/groundtruth/internal/models"
	"github.com/spacesedan/groundtruth/internal/sentiment"
)

const DEFAULT_MAX_REPORTED = 10

type Mismatch struct {
	Line     int
	ID       string
	Field    string
	Expected float64
	Actual   float64
}

type Report struct {
	Path       string
	Records    int
	Mismatches []Mismatch
}

func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Verifier re-scores the text column of annotated ground-truth files and
// compares the result against the stored scores.
type Verifier struct {
	scorer      sentiment.Scorer
	maxReported int
}

func NewVerifier(scorer sentiment.Scorer, maxReported int) *Verifier {
	if maxReported <= 0 {
		maxReported = DEFAULT_MAX_REPORTED
	}
	return &Verifier{scorer: scorer, maxReported: maxReported}
}

// Within reports whether actual matches expected to one unit in the last
// decimal place of expected. Reference files are rounded (0.4404) while a
// re-score comes back at full precision (0.44043...), so actual is rounded
// to the same number of places first. 0.0345 vs 0.0346 passes, 0.0345 vs
// 0.0348 does not.
func Within(expected, actual float64) bool {
	places := models.DecimalPlaces(expected)
	scale := math.Pow10(places)
	rounded := math.Round(actual*scale) / scale
	unit := 1 / scale
	return math.Abs(expected-rounded) <= unit+unit*1e-6
}

func (v *Verifier) VerifyFile(ctx context.Context, path string) (Report, error) {
	report := Report{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("[Verifier] failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		line, readErr := r.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			if err := v.verifyLine(&report, lineNo, line); err != nil {
				return report, err
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return report, fmt.Errorf("[Verifier] failed to read %s: %w", path, readErr)
		}
	}

	if report.OK() {
		slog.Info("[Verifier] All records match",
			slog.String("path", path),
			slog.Int("records", report.Records))
	} else {
		slog.Warn("[Verifier] Scores differ from ground truth",
			slog.String("path", path),
			slog.Int("records", report.Records),
			slog.Int("mismatches", len(report.Mismatches)))
	}
	return report, nil
}

func (v *Verifier) verifyLine(report *Report, lineNo int, line string) error {
	expected, fields, err := models.ParseAnnotatedLine(line)
	if err != nil {
		return &models.MalformedRecordError{
			Path:   report.Path,
			Line:   lineNo,
			Fields: fields,
			Want:   models.ANNOTATED_RECORD_FIELDS,
			Err:    err,
		}
	}

	actual, err := v.scorer.Score(expected.Text)
	if err != nil {
		return fmt.Errorf("[Verifier] %s:%d: scoring record %q: %w", report.Path, lineNo, expected.ID, err)
	}
	report.Records++

	checks := []struct {
		field            string
		expected, actual float64
	}{
		{"negative", expected.Score.Negative, actual.Negative},
		{"neutral", expected.Score.Neutral, actual.Neutral},
		{"positive", expected.Score.Positive, actual.Positive},
		{"compound", expected.Score.Compound, actual.Compound},
	}
	for _, c := range checks {
		if Within(c.expected, c.actual) {
			continue
		}
		m := Mismatch{Line: lineNo, ID: expected.ID, Field: c.field, Expected: c.expected, Actual: c.actual}
		report.Mismatches = append(report.Mismatches, m)
		if len(report.Mismatches) <= v.maxReported {
			slog.Warn("[Verifier] Score mismatch",
				slog.String("path", report.Path),
				slog.Int("line", m.Line),
				slog.String("id", m.ID),
				slog.String("field", m.Field),
				slog.Float64("expected", m.Expected),
				slog.Float64("actual", m.Actual),
				slog.String("text", expected.Text))
		}
	}
	return nil
}

// VerifyFiles checks every path and returns one report per file that could
// be read to the end.
func (v *Verifier) VerifyFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		report, err := v.VerifyFile(ctx, path)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
