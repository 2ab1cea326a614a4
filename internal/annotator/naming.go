package annotator

import (
	"path/filepath"
	"strings"
)

const (
	DEFAULT_SUFFIX    = "_vader"
	DEFAULT_EXTENSION = ".tsv"
)

// OutputNamer derives the output path for an input ground-truth file.
type OutputNamer interface {
	OutputPath(input string) string
}

// SuffixNamer maps dir/name.ext to Dir/name<Suffix><Extension>. Everything
// from the first dot of the file name on is dropped, so a.b.txt becomes a.
type SuffixNamer struct {
	Dir       string
	Suffix    string
	Extension string
}

func NewSuffixNamer(dir string) SuffixNamer {
	return SuffixNamer{
		Dir:       dir,
		Suffix:    DEFAULT_SUFFIX,
		Extension: DEFAULT_EXTENSION,
	}
}

func (n SuffixNamer) OutputPath(input string) string {
	stem := filepath.Base(input)
	if i := strings.IndexByte(stem, '.'); i > 0 {
		stem = stem[:i]
	}
	return filepath.Join(n.Dir, stem+n.Suffix+n.Extension)
}

// FixedNamer always returns the same path; only meaningful with a single input.
type FixedNamer string

func (n FixedNamer) OutputPath(string) string {
	return string(n)
}
