package services

import (
	"sort"
	"strings"

	"faredash/app/models"
	"faredash/app/sentiment"
	"faredash/data"
)

// NoWordCloudData replaces the word cloud when no comment matches the filter.
const NoWordCloudData = "No data available for this sentiment."

// Word cloud image size.
const (
	WordCloudWidth  = 800
	WordCloudHeight = 400
)

var stopwords = parseStopwords(data.Stopwords)

func parseStopwords(raw string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && line[0] != '#' {
			m[strings.ToLower(line)] = struct{}{}
		}
	}
	return m
}

// CorpusFor joins the comments of records carrying label.
func CorpusFor(records []models.CommentRecord, label models.Sentiment) string {
	var parts []string
	for _, r := range records {
		if r.Sentiment == label {
			parts = append(parts, r.Comment)
		}
	}
	return strings.Join(parts, " ")
}

// WordFrequencies counts the non-stopword words of text, most frequent
// first, ties broken alphabetically. Single characters are dropped.
func WordFrequencies(text string) []models.WordCount {
	counts := make(map[string]int)
	for _, w := range sentiment.Words(text) {
		w = strings.TrimSuffix(w, "'s")
		if len([]rune(w)) < 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		counts[w]++
	}

	out := make([]models.WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, models.WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// BuildWordCloud builds the word cloud view for label. When no comment
// carries the label the view holds the fallback message and no words.
func BuildWordCloud(records []models.CommentRecord, label models.Sentiment) models.WordCloudView {
	view := models.WordCloudView{
		Filter:  label,
		Options: models.AllSentiments(),
		Width:   WordCloudWidth,
		Height:  WordCloudHeight,
	}
	text := CorpusFor(records, label)
	if text != "" {
		view.Words = WordFrequencies(text)
	}
	if len(view.Words) == 0 {
		view.Words = nil
		view.Message = NoWordCloudData
	}
	return view
}
