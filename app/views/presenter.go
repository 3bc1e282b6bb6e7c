// Package views renders dashboard views to HTML.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"faredash/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Presenter writes a rendered view to w.
type Presenter interface {
	Present(w io.Writer, view *models.View) error
}

// HTMLPresenter renders one page per tab: the shared layout around the
// selected tab's panel.
type HTMLPresenter struct {
	templates map[models.Tab]*template.Template
}

var panels = map[models.Tab]string{
	models.TabOverview:        "templates/overview.html",
	models.TabTrends:          "templates/trends.html",
	models.TabWordCloud:       "templates/wordcloud.html",
	models.TabRecommendations: "templates/recommendations.html",
}

// NewHTMLPresenter parses the embedded templates.
func NewHTMLPresenter() (*HTMLPresenter, error) {
	p := &HTMLPresenter{templates: make(map[models.Tab]*template.Template)}
	for tab, panel := range panels {
		t, err := template.ParseFS(templateFS, "templates/layout.html", panel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", panel, err)
		}
		p.templates[tab] = t
	}
	return p, nil
}

type page struct {
	*models.View
	Labels []models.Sentiment
	Chart  string
}

// Present renders view. Only the selected tab's chart is built.
func (p *HTMLPresenter) Present(w io.Writer, view *models.View) error {
	t, ok := p.templates[view.State.Tab]
	if !ok {
		return fmt.Errorf("unknown tab %q", view.State.Tab)
	}

	data := page{View: view, Labels: models.AllSentiments()}
	var err error
	switch view.State.Tab {
	case models.TabOverview:
		data.Chart, err = PieChart(view.Counts)
	case models.TabTrends:
		data.Chart, err = TimelineChart(view.Daily)
	case models.TabWordCloud:
		if !view.WordCloud.Empty() {
			data.Chart, err = WordCloudChart(view.WordCloud)
		}
	}
	if err != nil {
		return err
	}

	return t.ExecuteTemplate(w, "layout", data)
}
