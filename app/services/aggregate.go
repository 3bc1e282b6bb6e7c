package services

import (
	"sort"
	"time"

	"faredash/app/models"
)

// CountBySentiment counts records per label. All three labels are present
// in the result; unlabelled records are not counted.
func CountBySentiment(records []models.CommentRecord) models.SentimentCounts {
	counts := models.NewSentimentCounts()
	for _, r := range records {
		if r.Sentiment.Valid() {
			counts[r.Sentiment]++
		}
	}
	return counts
}

// DailyCounts counts records per (date, label), one zero-filled row per
// date, ordered by date.
func DailyCounts(records []models.CommentRecord) []models.DailySentiment {
	byDay := make(map[time.Time]models.SentimentCounts)
	for _, r := range records {
		if !r.Sentiment.Valid() {
			continue
		}
		y, m, d := r.Date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		counts, ok := byDay[day]
		if !ok {
			counts = models.NewSentimentCounts()
			byDay[day] = counts
		}
		counts[r.Sentiment]++
	}

	rows := make([]models.DailySentiment, 0, len(byDay))
	for day, counts := range byDay {
		rows = append(rows, models.DailySentiment{Date: day, Counts: counts})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// SeriesBySentiment pivots the daily table into one series per label,
// aligned with the returned dates.
func SeriesBySentiment(rows []models.DailySentiment) ([]string, map[models.Sentiment][]int) {
	dates := make([]string, len(rows))
	series := make(map[models.Sentiment][]int, 3)
	for _, s := range models.AllSentiments() {
		series[s] = make([]int, len(rows))
	}
	for i, row := range rows {
		dates[i] = row.Date.Format(models.DateLayout)
		for _, s := range models.AllSentiments() {
			series[s][i] = row.Counts.Get(s)
		}
	}
	return dates, series
}
