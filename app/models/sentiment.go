package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSentiment = errors.New("invalid sentiment label")
	ErrAlreadyLabelled  = errors.New("record already labelled")
)

// Sentiment is the discretized polarity of a comment.
type Sentiment int

const (
	Unlabelled Sentiment = iota
	Positive
	Neutral
	Negative
)

var sentimentNames = map[Sentiment]string{
	Positive: "Positive",
	Neutral:  "Neutral",
	Negative: "Negative",
}

// AllSentiments returns the labels in display order.
func AllSentiments() []Sentiment {
	return []Sentiment{Positive, Neutral, Negative}
}

// ParseSentiment converts a label name, case-insensitively, to a Sentiment.
func ParseSentiment(name string) (Sentiment, error) {
	for s, n := range sentimentNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Unlabelled, fmt.Errorf("%w: %q", ErrInvalidSentiment, name)
}

// Valid reports whether s is one of the three labels.
func (s Sentiment) Valid() bool {
	_, ok := sentimentNames[s]
	return ok
}

func (s Sentiment) String() string {
	if name, ok := sentimentNames[s]; ok {
		return name
	}
	if s == Unlabelled {
		return ""
	}
	return fmt.Sprintf("Sentiment(%d)", int(s))
}

// MarshalJSON encodes the sentiment as its label.
func (s Sentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a label string. An empty string means unlabelled.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == "" {
		*s = Unlabelled
		return nil
	}
	v, err := ParseSentiment(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML encodes the sentiment as its label.
func (s Sentiment) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// SentimentCounts maps each label to a count. Counts built with
// NewSentimentCounts always hold all three labels.
type SentimentCounts map[Sentiment]int

// NewSentimentCounts returns a zero-filled table.
func NewSentimentCounts() SentimentCounts {
	c := make(SentimentCounts, 3)
	for _, s := range AllSentiments() {
		c[s] = 0
	}
	return c
}

// Get returns the count for s, zero when absent.
func (c SentimentCounts) Get(s Sentiment) int {
	return c[s]
}

// Total sums all counts.
func (c SentimentCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// MarshalJSON encodes the table keyed by label name.
func (c SentimentCounts) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(c))
	for s, n := range c {
		out[s.String()] = n
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a table keyed by label name.
func (c *SentimentCounts) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := NewSentimentCounts()
	for name, n := range raw {
		s, err := ParseSentiment(name)
		if err != nil {
			return err
		}
		out[s] = n
	}
	*c = out
	return nil
}
