package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRecordValidation(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  CommentRecord
		wantErr bool
	}{
		{
			name:    "valid unlabelled record",
			record:  NewCommentRecord(day, "Great move by the government."),
			wantErr: false,
		},
		{
			name:    "valid labelled record",
			record:  CommentRecord{Date: day, Comment: "Prices increased suddenly. Why?", Sentiment: Neutral},
			wantErr: false,
		},
		{
			name:    "empty comment",
			record:  NewCommentRecord(day, ""),
			wantErr: true,
		},
		{
			name:    "zero date",
			record:  CommentRecord{Comment: "Much better than flat fares."},
			wantErr: true,
		},
		{
			name:    "out of range sentiment",
			record:  CommentRecord{Date: day, Comment: "text", Sentiment: Sentiment(42)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewCommentRecordTruncatesToDay(t *testing.T) {
	at := time.Date(2025, 4, 3, 17, 45, 12, 0, time.FixedZone("CAT", 2*3600))
	record := NewCommentRecord(at, "text")

	assert.Equal(t, "2025-04-03", record.Day())
	assert.Equal(t, 0, record.Date.Hour())
	assert.Equal(t, time.UTC, record.Date.Location())
}

func TestCommentRecordWithSentiment(t *testing.T) {
	record := NewCommentRecord(time.Now(), "Unfair to students and low-income earners.")
	assert.False(t, record.Labelled())

	t.Run("label once", func(t *testing.T) {
		labelled, err := record.WithSentiment(Negative)
		require.NoError(t, err)
		assert.True(t, labelled.Labelled())
		assert.Equal(t, Negative, labelled.Sentiment)
		assert.False(t, record.Labelled(), "original record must not change")
	})

	t.Run("relabel rejected", func(t *testing.T) {
		labelled, err := record.WithSentiment(Positive)
		require.NoError(t, err)
		again, err := labelled.WithSentiment(Negative)
		assert.ErrorIs(t, err, ErrAlreadyLabelled)
		assert.Equal(t, Positive, again.Sentiment)
	})

	t.Run("invalid label", func(t *testing.T) {
		_, err := record.WithSentiment(Unlabelled)
		assert.ErrorIs(t, err, ErrInvalidSentiment)
	})
}

func TestDatasetValidate(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil dataset", func(t *testing.T) {
		var d *Dataset
		assert.Error(t, d.Validate())
	})

	t.Run("no records", func(t *testing.T) {
		d := &Dataset{Key: "k", GeneratedAt: time.Now()}
		assert.Error(t, d.Validate())
	})

	t.Run("invalid record", func(t *testing.T) {
		d := &Dataset{Key: "k", GeneratedAt: time.Now(), Records: []CommentRecord{{Date: day}}}
		assert.Error(t, d.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		d := &Dataset{
			Key:         "k",
			GeneratedAt: time.Now(),
			Records:     []CommentRecord{NewCommentRecord(day, "a"), NewCommentRecord(day, "b")},
		}
		assert.NoError(t, d.Validate())
		assert.Equal(t, []string{"a", "b"}, d.Comments())
	})
}
