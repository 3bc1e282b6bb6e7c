package models

import "time"

// CommentRecord is a single public comment about the fare policy.
type CommentRecord struct {
	Date      time.Time `json:"date" yaml:"date" validate:"required"`
	Comment   string    `json:"comment" yaml:"comment" validate:"required,max=1000"`
	Sentiment Sentiment `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
}

// Dataset is one generated batch of comment records.
type Dataset struct {
	Key         string          `json:"key" validate:"required"`
	Seed        uint64          `json:"seed"`
	GeneratedAt time.Time       `json:"generated_at" validate:"required"`
	Records     []CommentRecord `json:"records" validate:"required,min=1,dive"`
}

// DailySentiment is one row of the daily sentiment table.
type DailySentiment struct {
	Date   time.Time       `json:"date"`
	Counts SentimentCounts `json:"counts"`
}

// RecommendationKind selects how an advisory is displayed.
type RecommendationKind string

const (
	KindWarning RecommendationKind = "warning"
	KindSuccess RecommendationKind = "success"
	KindInfo    RecommendationKind = "info"
)

// Recommendation is an advisory derived from aggregate counts.
type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Message string             `json:"message"`
}
