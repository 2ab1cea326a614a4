package sentiment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ASCIIMode selects how non-ASCII text is normalized before scoring.
type ASCIIMode string

const (
	// ASCIINone leaves the text as read.
	ASCIINone ASCIIMode = "none"
	// ASCIIUnidecode transliterates every rune to its closest ASCII spelling
	// ("café" -> "cafe", "Ω" -> "O").
	ASCIIUnidecode ASCIIMode = "unidecode"
	// ASCIIFold strips diacritics via NFKD and drops anything still outside
	// ASCII.
	ASCIIFold ASCIIMode = "fold"
)

type Normalizer interface {
	ToASCII(text string) string
}

type NormalizerFunc func(text string) string

func (f NormalizerFunc) ToASCII(text string) string {
	return f(text)
}

func ParseASCIIMode(s string) (ASCIIMode, error) {
	switch mode := ASCIIMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", ASCIINone:
		return ASCIINone, nil
	case ASCIIUnidecode, ASCIIFold:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown ascii mode %q (want none, unidecode or fold)", s)
	}
}

// NewNormalizer returns nil for ASCIINone.
func NewNormalizer(mode ASCIIMode) (Normalizer, error) {
	switch mode {
	case "", ASCIINone:
		return nil, nil
	case ASCIIUnidecode:
		return NormalizerFunc(unidecode.Unidecode), nil
	case ASCIIFold:
		return NormalizerFunc(foldToASCII), nil
	default:
		return nil, fmt.Errorf("unknown ascii mode %q", mode)
	}
}

func foldToASCII(text string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
