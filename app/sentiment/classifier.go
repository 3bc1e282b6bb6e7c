package sentiment

import (
	"fmt"
	"log/slog"
	"math"

	"faredash/app/logging"
	"faredash/app/models"
)

// Label thresholds. Scores equal to a threshold are Neutral.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// Classifier maps text to one of the three sentiment labels.
type Classifier struct {
	scorer Scorer
	logger *slog.Logger
}

// NewClassifier wraps scorer. A nil scorer uses the embedded lexicon.
func NewClassifier(scorer Scorer) *Classifier {
	if scorer == nil {
		scorer = NewAnalyzer()
	}
	return &Classifier{scorer: scorer}
}

// WithLogger sets the logger used to report scoring failures.
func (c *Classifier) WithLogger(l *slog.Logger) *Classifier {
	c.logger = l
	return c
}

func (c *Classifier) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.Get()
}

// Label applies the thresholds to a polarity score.
func Label(score float64) models.Sentiment {
	switch {
	case math.IsNaN(score):
		return models.Neutral
	case score > PositiveThreshold:
		return models.Positive
	case score < NegativeThreshold:
		return models.Negative
	default:
		return models.Neutral
	}
}

// Score returns the polarity of text. Failures, including a panicking
// scorer, are returned as errors.
func (c *Classifier) Score(text string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("%w: scorer panic: %v", ErrUnscoreable, r)
		}
	}()
	return c.scorer.Polarity(text)
}

// Classify labels text. Scoring failures resolve to Neutral.
func (c *Classifier) Classify(text string) models.Sentiment {
	label, _ := c.ClassifyWithScore(text)
	return label
}

// ClassifyWithScore labels text and returns the score that produced the
// label; the score is 0 when scoring failed.
func (c *Classifier) ClassifyWithScore(text string) (models.Sentiment, float64) {
	score, err := c.Score(text)
	if err != nil {
		c.log().Debug("sentiment scoring failed, defaulting to neutral", "error", err, "bytes", len(text))
		return models.Neutral, 0
	}
	if math.IsNaN(score) {
		return models.Neutral, 0
	}
	return Label(score), score
}

// ClassifyAll returns labelled copies of records. Records that already carry
// a label are re-classified from their text.
func (c *Classifier) ClassifyAll(records []models.CommentRecord) []models.CommentRecord {
	out := make([]models.CommentRecord, len(records))
	for i, r := range records {
		r.Sentiment = models.Unlabelled
		labelled, err := r.WithSentiment(c.Classify(r.Comment))
		if err != nil {
			// Classify only returns valid labels.
			labelled = r
		}
		out[i] = labelled
	}
	return out
}
