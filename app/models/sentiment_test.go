package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		in      string
		want    Sentiment
		wantErr bool
	}{
		{in: "Positive", want: Positive},
		{in: "negative", want: Negative},
		{in: " NEUTRAL ", want: Neutral},
		{in: "", wantErr: true},
		{in: "Mixed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSentiment(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSentiment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentimentString(t *testing.T) {
	assert.Equal(t, "Positive", Positive.String())
	assert.Equal(t, "Neutral", Neutral.String())
	assert.Equal(t, "Negative", Negative.String())
	assert.Equal(t, "", Unlabelled.String())
	assert.Equal(t, "Sentiment(9)", Sentiment(9).String())
}

func TestSentimentJSON(t *testing.T) {
	data, err := json.Marshal(Negative)
	require.NoError(t, err)
	assert.JSONEq(t, `"Negative"`, string(data))

	var s Sentiment
	require.NoError(t, json.Unmarshal([]byte(`"Positive"`), &s))
	assert.Equal(t, Positive, s)

	require.NoError(t, json.Unmarshal([]byte(`""`), &s))
	assert.Equal(t, Unlabelled, s)

	assert.Error(t, json.Unmarshal([]byte(`"Happy"`), &s))
}

func TestSentimentCounts(t *testing.T) {
	c := NewSentimentCounts()
	assert.Len(t, c, 3)
	assert.Equal(t, 0, c.Total())

	c[Positive] = 4
	c[Negative] = 2
	assert.Equal(t, 6, c.Total())
	assert.Equal(t, 0, c.Get(Neutral))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Positive":4,"Neutral":0,"Negative":2}`, string(data))

	var decoded SentimentCounts
	require.NoError(t, json.Unmarshal([]byte(`{"Negative":11}`), &decoded))
	assert.Equal(t, 11, decoded.Get(Negative))
	assert.Len(t, decoded, 3)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabOverview, tab)

	tab, err = ParseTab("wordcloud")
	require.NoError(t, err)
	assert.Equal(t, TabWordCloud, tab)

	_, err = ParseTab("Settings")
	assert.Error(t, err)
}
