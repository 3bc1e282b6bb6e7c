// Package sentiment scores English text against a polarity lexicon and maps
// the score to a sentiment label.
//
// The analyzer tokenizes input, looks each lower-cased word up in an embedded
// lexicon and averages the scores of the words it finds. Intensifiers scale
// the next scored word and negations flip it at half strength; both reset at
// clause punctuation.
//
// All functions are safe for concurrent use by multiple goroutines.
package sentiment

import (
	"errors"
	"math"
	"unicode/utf8"
)

// maxInputBytes is the largest input the analyzer will score.
const maxInputBytes = 1 << 20

// ErrUnscoreable is returned for input the analyzer refuses to score.
var ErrUnscoreable = errors.New("sentiment: unscoreable input")

// Scorer produces a polarity score in [-1, 1] for a text.
type Scorer interface {
	Polarity(text string) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(text string) (float64, error)

// Polarity calls f(text).
func (f ScorerFunc) Polarity(text string) (float64, error) {
	return f(text)
}

// Result holds the detailed output of one analysis.
type Result struct {
	Score    float64 `json:"score"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Scored   int     `json:"scored"`
	Total    int     `json:"total"`
}

// Analyzer is a lexicon-based Scorer.
type Analyzer struct {
	polarity     map[string]float64
	intensifiers map[string]float64
}

// NewAnalyzer returns an analyzer backed by the embedded lexicons.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		polarity:     defaultPolarity,
		intensifiers: defaultIntensifiers,
	}
}

// NewAnalyzerWithLexicon returns an analyzer over a custom lexicon and no
// intensifiers.
func NewAnalyzerWithLexicon(polarity map[string]float64) *Analyzer {
	return &Analyzer{
		polarity:     polarity,
		intensifiers: map[string]float64{},
	}
}

// Polarity implements Scorer.
func (a *Analyzer) Polarity(text string) (float64, error) {
	res, err := a.Analyze(text)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Analyze scores text and reports how many words contributed.
// Empty input scores 0.
func (a *Analyzer) Analyze(text string) (Result, error) {
	if len(text) > maxInputBytes || !utf8.ValidString(text) {
		return Result{}, ErrUnscoreable
	}

	var (
		res        Result
		sum        float64
		multiplier = 1.0
		negated    bool
	)
	for _, tok := range Tokenize(text) {
		if tok.Boundary {
			multiplier, negated = 1.0, false
			continue
		}
		res.Total++
		if isNegation(tok.Text) {
			negated = true
			continue
		}
		if m, ok := a.intensifiers[tok.Text]; ok {
			multiplier *= m
			continue
		}
		p, ok := a.polarity[tok.Text]
		if !ok {
			continue
		}
		p *= multiplier
		if negated {
			p *= negationFactor
		}
		multiplier, negated = 1.0, false

		sum += p
		res.Scored++
		switch {
		case p > 0:
			res.Positive++
		case p < 0:
			res.Negative++
		}
	}

	if res.Scored > 0 {
		res.Score = clamp(sum / float64(res.Scored))
	}
	return res, nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
