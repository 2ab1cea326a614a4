package annotator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spacesedan/groundtruth/internal/models"
	"github.com/spacesedan/groundtruth/internal/sentiment"
)

// Config is everything the annotator needs; there is no global state.
type Config struct {
	Inputs []string
	Namer  OutputNamer
	ASCII  sentiment.ASCIIMode

	// ContinueOnError keeps going with the next input after a file fails.
	ContinueOnError bool
}

type Annotator struct {
	inputs          []string
	namer           OutputNamer
	scorer          sentiment.Scorer
	normalizer      sentiment.Normalizer
	continueOnError bool
}

// Result describes one fully written output file.
type Result struct {
	Input   string
	Output  string
	Records int
}

// ScoreError wraps a scorer failure for a single record.
type ScoreError struct {
	Path string
	Line int
	ID   string
	Err  error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("%s:%d: scoring record %q: %v", e.Path, e.Line, e.ID, e.Err)
}

func (e *ScoreError) Unwrap() error {
	return e.Err
}

func New(cfg Config, scorer sentiment.Scorer) (*Annotator, error) {
	if scorer == nil {
		return nil, errors.New("[Annotator] scorer is required")
	}

	namer := cfg.Namer
	if namer == nil {
		namer = NewSuffixNamer(".")
	}

	if _, fixed := namer.(FixedNamer); fixed && len(cfg.Inputs) > 1 {
		return nil, fmt.Errorf("[Annotator] a fixed output path needs exactly one input, got %d", len(cfg.Inputs))
	}

	// Two inputs sharing an output would silently overwrite each other, and
	// an output landing on its own input would destroy the input.
	seen := make(map[string]string, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		out := filepath.Clean(namer.OutputPath(input))
		if out == filepath.Clean(input) {
			return nil, fmt.Errorf("[Annotator] output path %s is the input itself", out)
		}
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("[Annotator] inputs %s and %s both map to %s", prev, input, out)
		}
		seen[out] = input
	}

	normalizer, err := sentiment.NewNormalizer(cfg.ASCII)
	if err != nil {
		return nil, fmt.Errorf("[Annotator] %w", err)
	}

	return &Annotator{
		inputs:          cfg.Inputs,
		namer:           namer,
		scorer:          scorer,
		normalizer:      normalizer,
		continueOnError: cfg.ContinueOnError,
	}, nil
}

// Run annotates every configured input in order. Results are returned for
// the files that completed.
func (a *Annotator) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(a.inputs))
	var errs []error

	for _, input := range a.inputs {
		res, err := a.AnnotateFile(ctx, input)
		if err != nil {
			slog.Error("[Annotator] Failed to annotate file",
				slog.String("input", input),
				slog.String("error", err.Error()))
			if !a.continueOnError || ctx.Err() != nil {
				return results, err
			}
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

// AnnotateFile streams input line by line into its derived output. Lines
// already written stay on disk if a later line fails.
func (a *Annotator) AnnotateFile(ctx context.Context, input string) (Result, error) {
	output := a.namer.OutputPath(input)
	res := Result{Input: input, Output: output}

	in, err := os.Open(input)
	if err != nil {
		return res, fmt.Errorf("[Annotator] failed to open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return res, fmt.Errorf("[Annotator] failed to create output: %w", err)
	}

	w := bufio.NewWriter(out)
	closed := false
	// On failure, whatever was written before the bad line still reaches disk.
	defer func() {
		if !closed {
			_ = w.Flush()
			_ = out.Close()
		}
	}()

	r := bufio.NewReader(in)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line, readErr := r.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			record, err := a.annotateLine(input, lineNo, line)
			if err != nil {
				return res, err
			}
			if _, err := w.WriteString(record.Line()); err != nil {
				return res, fmt.Errorf("[Annotator] failed to write output: %w", err)
			}
			res.Records++
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return res, fmt.Errorf("[Annotator] failed to read input: %w", readErr)
		}
	}

	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("[Annotator] failed to flush output: %w", err)
	}
	closed = true
	if err := out.Close(); err != nil {
		return res, fmt.Errorf("[Annotator] failed to close output: %w", err)
	}

	slog.Info("[Annotator] Created output",
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("records", res.Records))
	return res, nil
}

func (a *Annotator) annotateLine(path string, lineNo int, line string) (models.AnnotatedRecord, error) {
	record, fields, ok := models.ParseGroundTruthLine(line)
	if !ok {
		return models.AnnotatedRecord{}, &models.MalformedRecordError{
			Path:   path,
			Line:   lineNo,
			Fields: fields,
			Want:   models.GROUND_TRUTH_FIELDS,
		}
	}

	text := a.cleanText(record.Text)
	score, err := a.scorer.Score(text)
	if err != nil {
		return models.AnnotatedRecord{}, &ScoreError{Path: path, Line: lineNo, ID: record.ID, Err: err}
	}

	return models.AnnotatedRecord{
		ID:    record.ID,
		Score: score,
		Text:  text,
	}, nil
}

func (a *Annotator) cleanText(text string) string {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if a.normalizer == nil {
		return text
	}
	return strings.TrimRightFunc(a.normalizer.ToASCII(text), unicode.IsSpace)
}
