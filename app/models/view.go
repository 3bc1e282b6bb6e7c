package models

import (
	"fmt"
	"strings"
)

// Tab identifies one of the dashboard tabs.
type Tab string

const (
	TabOverview        Tab = "Overview"
	TabTrends          Tab = "Trends"
	TabWordCloud       Tab = "WordCloud"
	TabRecommendations Tab = "Recommendations"
)

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabOverview, TabTrends, TabWordCloud, TabRecommendations}
}

// ParseTab matches a tab name case-insensitively. An empty name selects the
// overview.
func ParseTab(name string) (Tab, error) {
	if strings.TrimSpace(name) == "" {
		return TabOverview, nil
	}
	for _, t := range AllTabs() {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", name)
}

// ViewState is everything the user can change between renders.
type ViewState struct {
	Tab             Tab       `json:"tab"`
	WordCloudFilter Sentiment `json:"word_cloud_filter"`
}

// DefaultViewState is the state of a first visit.
func DefaultViewState() ViewState {
	return ViewState{Tab: TabOverview, WordCloudFilter: Positive}
}

// WordCount is one word of a word cloud.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordCloudView is the word cloud tab for one sentiment filter.
type WordCloudView struct {
	Filter  Sentiment   `json:"filter"`
	Options []Sentiment `json:"options"`
	Words   []WordCount `json:"words,omitempty"`
	// Message replaces the chart when no comment matches the filter.
	Message string `json:"message,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Empty reports whether the fallback message is shown instead of a chart.
func (w WordCloudView) Empty() bool {
	return len(w.Words) == 0
}

// View describes a fully rendered dashboard page.
type View struct {
	PageTitle       string           `json:"page_title"`
	Heading         string           `json:"heading"`
	State           ViewState        `json:"state"`
	Tabs            []Tab            `json:"tabs"`
	Counts          SentimentCounts  `json:"counts"`
	Daily           []DailySentiment `json:"daily"`
	WordCloud       WordCloudView    `json:"word_cloud"`
	Recommendations []Recommendation `json:"recommendations"`
	Caption         string           `json:"caption"`
	DatasetKey      string           `json:"dataset_key"`
}
