package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DateLayout is the calendar date format used for records and the timeline.
const DateLayout = "2006-01-02"

// NewCommentRecord creates an unlabelled record for the given day.
func NewCommentRecord(date time.Time, comment string) CommentRecord {
	y, m, d := date.Date()
	return CommentRecord{
		Date:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Comment: comment,
	}
}

// Validate checks if the record meets all validation requirements
func (c CommentRecord) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Sentiment != Unlabelled && !c.Sentiment.Valid() {
		return ErrInvalidSentiment
	}
	return nil
}

// Labelled reports whether a sentiment has been attached.
func (c CommentRecord) Labelled() bool {
	return c.Sentiment != Unlabelled
}

// WithSentiment returns a labelled copy of the record. A record is labelled
// once; relabelling returns an error and the record unchanged.
func (c CommentRecord) WithSentiment(s Sentiment) (CommentRecord, error) {
	if !s.Valid() {
		return c, ErrInvalidSentiment
	}
	if c.Labelled() {
		return c, ErrAlreadyLabelled
	}
	c.Sentiment = s
	return c, nil
}

// Day returns the record date formatted as a calendar date.
func (c CommentRecord) Day() string {
	return c.Date.Format(DateLayout)
}

// Validate checks the dataset and every record in it.
func (d *Dataset) Validate() error {
	if d == nil {
		return errors.New("dataset cannot be nil")
	}
	if err := validate.Struct(d); err != nil {
		return err
	}
	if d.GeneratedAt.IsZero() {
		return errors.New("generated_at cannot be zero")
	}
	return nil
}

// Comments returns the raw comment text of every record.
func (d *Dataset) Comments() []string {
	out := make([]string, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Comment
	}
	return out
}
