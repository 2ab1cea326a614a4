package sentiment

import "github.com/spacesedan/groundtruth/internal/models"

// Scorer assigns polarity scores to a piece of text. Implementations must be
// deterministic and free of side effects.
type Scorer interface {
	Score(text string) (models.PolarityScore, error)
}

type ScorerFunc func(text string) (models.PolarityScore, error)

func (f ScorerFunc) Score(text string) (models.PolarityScore, error) {
	return f(text)
}
