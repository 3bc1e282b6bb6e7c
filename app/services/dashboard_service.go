package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"faredash/app/generator"
	"faredash/app/logging"
	"faredash/app/metrics"
	"faredash/app/models"
	"faredash/app/repositories"
	"faredash/app/sentiment"
)

// Page text shown on every render.
const (
	PageTitle = "Rwanda Fare Sentiment Dashboard"
	Heading   = "Rwanda Distance-Based Fare Public Sentiment Dashboard"
	Caption   = "Developed for the Tech Associates Hackathon 2025"
)

// DashboardService composes generate, classify, aggregate and recommend
// into one render of the dashboard.
type DashboardService struct {
	repo       repositories.DatasetRepository
	generator  *generator.Generator
	classifier *sentiment.Classifier
	metrics    *metrics.Metrics
	logger     *slog.Logger

	// mu serializes dataset creation so concurrent first renders share one
	// generated dataset.
	mu sync.Mutex
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo repositories.DatasetRepository, gen *generator.Generator, classifier *sentiment.Classifier) *DashboardService {
	if classifier == nil {
		classifier = sentiment.NewClassifier(nil)
	}
	return &DashboardService{
		repo:       repo,
		generator:  gen,
		classifier: classifier,
	}
}

// WithMetrics attaches Prometheus collectors.
func (s *DashboardService) WithMetrics(m *metrics.Metrics) *DashboardService {
	s.metrics = m
	return s
}

// WithLogger sets the service logger.
func (s *DashboardService) WithLogger(l *slog.Logger) *DashboardService {
	s.logger = l
	return s
}

func (s *DashboardService) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		if id := logging.RequestID(ctx); id != "" {
			return s.logger.With("request_id", id)
		}
		return s.logger
	}
	return logging.WithContext(ctx)
}

// Dataset returns the memoized raw dataset, generating and storing it on
// first use. The key is the generator fingerprint, so every render within
// the lifetime of the store sees the same shuffle.
func (s *DashboardService) Dataset(ctx context.Context) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := s.generator.Fingerprint()

	if d, err := s.repo.Get(key); err == nil {
		s.metrics.ObserveCache(true)
		return d, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another render may have stored it while we waited.
	if d, err := s.repo.Get(key); err == nil {
		s.metrics.ObserveCache(true)
		return d, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	s.metrics.ObserveCache(false)
	d := s.generator.Generate()
	if err := s.repo.Save(d); err != nil {
		return nil, fmt.Errorf("failed to store dataset: %w", err)
	}
	s.log(ctx).Info("dataset generated", "key", d.Key, "records", len(d.Records), "seed", d.Seed)
	return d, nil
}

// Records returns the memoized dataset with every comment classified.
func (s *DashboardService) Records(ctx context.Context) ([]models.CommentRecord, *models.Dataset, error) {
	d, err := s.Dataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	records := s.classifier.ClassifyAll(d.Records)
	for _, r := range records {
		s.metrics.ObserveClassification(r.Sentiment.String())
	}
	return records, d, nil
}

// Classify scores and labels a single text.
func (s *DashboardService) Classify(text string) (models.Sentiment, float64) {
	label, score := s.classifier.ClassifyWithScore(text)
	s.metrics.ObserveClassification(label.String())
	return label, score
}

// Render builds the complete page description for state. Every call
// recomputes labels and aggregates from the memoized dataset.
func (s *DashboardService) Render(ctx context.Context, state models.ViewState) (*models.View, error) {
	if state.Tab == "" {
		state.Tab = models.TabOverview
	}
	if state.WordCloudFilter == models.Unlabelled {
		state.WordCloudFilter = models.Positive
	}
	if !state.WordCloudFilter.Valid() {
		return nil, models.ErrInvalidSentiment
	}

	records, d, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	counts := CountBySentiment(records)
	view := &models.View{
		PageTitle:       PageTitle,
		Heading:         Heading,
		State:           state,
		Tabs:            models.AllTabs(),
		Counts:          counts,
		Daily:           DailyCounts(records),
		WordCloud:       BuildWordCloud(records, state.WordCloudFilter),
		Recommendations: Recommend(counts, d.Comments()),
		Caption:         Caption,
		DatasetKey:      d.Key,
	}

	s.metrics.ObserveRender(string(state.Tab))
	s.log(ctx).Debug("dashboard rendered",
		"tab", state.Tab,
		"filter", state.WordCloudFilter.String(),
		"positive", counts.Get(models.Positive),
		"neutral", counts.Get(models.Neutral),
		"negative", counts.Get(models.Negative),
	)
	return view, nil
}

// Regenerate drops the memoized dataset so the next render shuffles anew.
func (s *DashboardService) Regenerate(ctx context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	err := s.repo.Delete(s.generator.Fingerprint())
	s.mu.Unlock()
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to drop dataset: %w", err)
	}
	return s.Dataset(ctx)
}
