package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/groundtruth/internal/models"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
	markdown bool
}

type VaderOption func(*VaderScorer)

// WithMarkdownCleanup renders markdown to plain text and drops links before
// scoring. Off by default so that text is scored exactly as read.
func WithMarkdownCleanup(enabled bool) VaderOption {
	return func(v *VaderScorer) {
		v.markdown = enabled
	}
}

func NewVaderScorer(opts ...VaderOption) *VaderScorer {
	v := &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *VaderScorer) Score(text string) (models.PolarityScore, error) {
	if v.markdown {
		text = ConvertMarkdownToText(text)
	}

	sentiment := v.analyzer.PolarityScores(text)
	return models.PolarityScore{
		Negative: sentiment.Negative,
		Neutral:  sentiment.Neutral,
		Positive: sentiment.Positive,
		Compound: sentiment.Compound,
	}, nil
}

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		// no smartypants: curly quotes would change how contractions score
		blackfriday.WithRenderer(blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})))

	return strings.Join(strings.Fields(RemoveLinks(stripTags(string(output)))), " ")
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// blackfriday emits HTML; only the text content is wanted.
func stripTags(rendered string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(rendered, " "))
}
