package services

import (
	"strings"

	"faredash/app/models"
)

// NegativeAdvisoryThreshold is the Negative count above which the warning
// replaces the affirmation.
const NegativeAdvisoryThreshold = 10

// confusionMarker is matched case-insensitively against the whole corpus.
const confusionMarker = "confusing"

const (
	HighNegativeMessage   = "High negative sentiment detected. Consider public awareness campaigns and fare calculators to educate citizens."
	MostlyPositiveMessage = "Public perception is mostly positive or neutral."
	CommunicationMessage  = "Multiple users mentioned confusion - consider improving communication about how fares are calculated."
)

// Recommend derives advisories from the sentiment counts and the raw
// comments. The negative-count advisory and the communication advisory are
// independent.
func Recommend(counts models.SentimentCounts, comments []string) []models.Recommendation {
	var out []models.Recommendation
	if counts.Get(models.Negative) > NegativeAdvisoryThreshold {
		out = append(out, models.Recommendation{Kind: models.KindWarning, Message: HighNegativeMessage})
	} else {
		out = append(out, models.Recommendation{Kind: models.KindSuccess, Message: MostlyPositiveMessage})
	}

	corpus := strings.ToLower(strings.Join(comments, " "))
	if strings.Contains(corpus, confusionMarker) {
		out = append(out, models.Recommendation{Kind: models.KindInfo, Message: CommunicationMessage})
	}
	return out
}
