package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"faredash/app/logging"
	"faredash/app/models"
	"faredash/app/services"
	"faredash/app/views"

	"github.com/go-playground/validator/v10"
)

// maxClassifyBody bounds the POST /api/classify payload.
const maxClassifyBody = 64 << 10

var validate = validator.New()

// ClassifyRequest is the payload of POST /api/classify.
type ClassifyRequest struct {
	Text string `json:"text" validate:"required,max=4096"`
}

// ClassifyResponse is the reply of POST /api/classify.
type ClassifyResponse struct {
	Text      string           `json:"text"`
	Score     float64          `json:"score"`
	Sentiment models.Sentiment `json:"sentiment"`
}

// DashboardController handles HTTP requests for the dashboard
type DashboardController struct {
	service   *services.DashboardService
	presenter views.Presenter
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(service *services.DashboardService, presenter views.Presenter) *DashboardController {
	return &DashboardController{
		service:   service,
		presenter: presenter,
	}
}

// parseState reads the tab and word cloud filter from the query string.
func parseState(r *http.Request) (models.ViewState, error) {
	state := models.DefaultViewState()
	q := r.URL.Query()

	tab, err := models.ParseTab(q.Get("tab"))
	if err != nil {
		return state, err
	}
	state.Tab = tab

	if name := q.Get("sentiment"); name != "" {
		s, err := models.ParseSentiment(name)
		if err != nil {
			return state, err
		}
		state.WordCloudFilter = s
	}
	return state, nil
}

// Show renders the dashboard page
func (dc *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	state, err := parseState(r)
	if err != nil {
		dc.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := dc.service.Render(r.Context(), state)
	if err != nil {
		dc.sendError(w, r, "Failed to render dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := dc.presenter.Present(&buf, view); err != nil {
		dc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// Health reports liveness
func (dc *DashboardController) Health(w http.ResponseWriter, r *http.Request) {
	dc.sendJSON(w, map[string]string{"status": "ok"})
}

// Dashboard returns the full view as JSON
func (dc *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	state, err := parseState(r)
	if err != nil {
		dc.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := dc.service.Render(r.Context(), state)
	if err != nil {
		dc.sendError(w, r, "Failed to render dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}
	dc.sendJSON(w, view)
}

// Comments lists the labelled dataset, optionally filtered by sentiment
func (dc *DashboardController) Comments(w http.ResponseWriter, r *http.Request) {
	var filter models.Sentiment
	if name := r.URL.Query().Get("sentiment"); name != "" {
		s, err := models.ParseSentiment(name)
		if err != nil {
			dc.sendError(w, r, err.Error(), http.StatusBadRequest)
			return
		}
		filter = s
	}

	records, dataset, err := dc.service.Records(r.Context())
	if err != nil {
		dc.sendError(w, r, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if filter != models.Unlabelled {
		kept := records[:0]
		for _, rec := range records {
			if rec.Sentiment == filter {
				kept = append(kept, rec)
			}
		}
		records = kept
	}

	dc.sendJSON(w, map[string]interface{}{
		"dataset_key": dataset.Key,
		"comments":    records,
	})
}

// Counts returns the label distribution
func (dc *DashboardController) Counts(w http.ResponseWriter, r *http.Request) {
	records, _, err := dc.service.Records(r.Context())
	if err != nil {
		dc.sendError(w, r, "Failed to fetch counts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	counts := services.CountBySentiment(records)
	dc.sendJSON(w, map[string]interface{}{
		"counts": counts,
		"total":  counts.Total(),
	})
}

// Trends returns the daily counts pivoted into one series per label
func (dc *DashboardController) Trends(w http.ResponseWriter, r *http.Request) {
	records, _, err := dc.service.Records(r.Context())
	if err != nil {
		dc.sendError(w, r, "Failed to fetch trends: "+err.Error(), http.StatusInternalServerError)
		return
	}
	dates, series := services.SeriesBySentiment(services.DailyCounts(records))
	byName := make(map[string][]int, len(series))
	for s, points := range series {
		byName[s.String()] = points
	}
	dc.sendJSON(w, map[string]interface{}{
		"dates":  dates,
		"series": byName,
	})
}

// Classify labels a single text
func (dc *DashboardController) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		dc.sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ClassifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxClassifyBody)).Decode(&req); err != nil {
		dc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		dc.sendError(w, r, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	label, score := dc.service.Classify(req.Text)
	dc.sendJSON(w, ClassifyResponse{Text: req.Text, Score: score, Sentiment: label})
}

// Regenerate drops the memoized dataset and shuffles a new one
func (dc *DashboardController) Regenerate(w http.ResponseWriter, r *http.Request) {
	dataset, err := dc.service.Regenerate(r.Context())
	if err != nil {
		dc.sendError(w, r, "Failed to regenerate dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}
	dc.sendJSON(w, map[string]interface{}{
		"dataset_key":  dataset.Key,
		"seed":         dataset.Seed,
		"generated_at": dataset.GeneratedAt,
		"records":      len(dataset.Records),
	})
}

// Helper methods for consistent response handling

func isAPI(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

func (dc *DashboardController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Get().Error("failed to encode response", "error", err)
	}
}

func (dc *DashboardController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if status >= http.StatusInternalServerError {
		logging.WithContext(r.Context()).Error("request failed", "path", r.URL.Path, "status", status, "error", message)
	}
	if isAPI(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}
