package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroundTruthLine(t *testing.T) {
	tests := []struct {
		desc   string
		line   string
		ok     bool
		fields int
		want   GroundTruthRecord
	}{
		{
			desc:   "well formed",
			line:   "42\tirrelevant\tI love this!\n",
			ok:     true,
			fields: 3,
			want:   GroundTruthRecord{ID: "42", Label: "irrelevant", Text: "I love this!\n"},
		},
		{
			desc:   "empty text",
			line:   "7\t0.5\t\n",
			ok:     true,
			fields: 3,
			want:   GroundTruthRecord{ID: "7", Label: "0.5", Text: "\n"},
		},
		{desc: "two fields", line: "1\tonly two\n", fields: 2},
		{desc: "blank line", line: "\n", fields: 1},
		{desc: "four fields", line: "1\ta\tb\tc\n", fields: 4},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, n, ok := ParseGroundTruthLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.fields, n)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		0:       "0.0",
		1:       "1.0",
		-1:      "-1.0",
		0.308:   "0.308",
		0.6696:  "0.6696",
		-0.4767: "-0.4767",
		0.1:     "0.1",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatScore(in), "input %v", in)
	}
}

func TestAnnotatedRecordLine(t *testing.T) {
	rec := AnnotatedRecord{
		ID:    "42",
		Score: PolarityScore{Negative: 0.0, Neutral: 0.308, Positive: 0.692, Compound: 0.6696},
		Text:  "I love this!",
	}
	assert.Equal(t, "42\t0.0\t0.308\t0.692\t0.6696\tI love this!\n", rec.Line())
}

func TestParseAnnotatedLine(t *testing.T) {
	rec, n, err := ParseAnnotatedLine("42\t0.0\t0.308\t0.692\t0.6696\tI love this!\r\n")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "42", rec.ID)
	assert.Equal(t, "I love this!", rec.Text)
	assert.InDelta(t, 0.6696, rec.Score.Compound, 1e-12)

	t.Run("wrong field count", func(t *testing.T) {
		_, n, err := ParseAnnotatedLine("42\t0.0\tI love this!")
		assert.Error(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("bad number", func(t *testing.T) {
		_, _, err := ParseAnnotatedLine("42\tx\t0.308\t0.692\t0.6696\ttext")
		assert.Error(t, err)
	})
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, 1, DecimalPlaces(0))
	assert.Equal(t, 3, DecimalPlaces(0.308))
	assert.Equal(t, 4, DecimalPlaces(-0.4767))
}
