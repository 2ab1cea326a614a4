package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderScorerPolarity(t *testing.T) {
	scorer := NewVaderScorer()

	tests := []struct {
		text string
		sign int
		desc string
	}{
		{"I love this!", 1, "positive"},
		{"This is terrible and I hate it.", -1, "negative"},
		{"The box is on the table.", 0, "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score, err := scorer.Score(tt.text)
			require.NoError(t, err)

			switch tt.sign {
			case 1:
				assert.Greater(t, score.Compound, 0.0)
				assert.Greater(t, score.Positive, score.Negative)
			case -1:
				assert.Less(t, score.Compound, 0.0)
				assert.Greater(t, score.Negative, score.Positive)
			default:
				assert.InDelta(t, 0.0, score.Compound, 1e-9)
			}

			assert.GreaterOrEqual(t, score.Compound, -1.0)
			assert.LessOrEqual(t, score.Compound, 1.0)
			assert.InDelta(t, 1.0, score.Negative+score.Neutral+score.Positive, 0.01)
		})
	}
}

func TestVaderScorerDeterministic(t *testing.T) {
	scorer := NewVaderScorer()
	a, err := scorer.Score("Not bad at all, really quite good :)")
	require.NoError(t, err)
	b, err := scorer.Score("Not bad at all, really quite good :)")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestConvertMarkdownToText(t *testing.T) {
	in := "**Great** product, see [the review](https://example.com/r) &  https://example.com/x"
	assert.Equal(t, "Great product, see the review &", ConvertMarkdownToText(in))
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "read docs now", RemoveLinks("read [docs](http://a.b/c) now"))
	assert.Equal(t, "visit  today", RemoveLinks("visit www.example.com today"))
}

func TestNormalizers(t *testing.T) {
	tests := []struct {
		mode ASCIIMode
		in   string
		want string
	}{
		{ASCIIUnidecode, "Café crème", "Cafe creme"},
		{ASCIIUnidecode, "naïve “quotes”", `naive "quotes"`},
		{ASCIIFold, "Café crème", "Cafe creme"},
		{ASCIIFold, "smile 😀 ok", "smile  ok"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.in, func(t *testing.T) {
			n, err := NewNormalizer(tt.mode)
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.ToASCII(tt.in))
		})
	}

	n, err := NewNormalizer(ASCIINone)
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = NewNormalizer("latin1")
	assert.Error(t, err)
}

func TestParseASCIIMode(t *testing.T) {
	for in, want := range map[string]ASCIIMode{
		"":          ASCIINone,
		"none":      ASCIINone,
		"UNIDECODE": ASCIIUnidecode,
		" fold ":    ASCIIFold,
	} {
		got, err := ParseASCIIMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseASCIIMode("bogus")
	assert.Error(t, err)
}
