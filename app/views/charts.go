package views

import (
	"bytes"
	"fmt"
	"io"

	"faredash/app/models"
	"faredash/app/services"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart titles.
const (
	PieTitle      = "Sentiment Pie Chart"
	TimelineTitle = "Sentiment Timeline"
)

const chartWidth, chartHeight = "900px", "480px"

func initOpts(pageTitle, width, height string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:       pageTitle,
		Width:           width,
		Height:          height,
		BackgroundColor: "white",
	})
}

// PieChart renders the overall label distribution as a standalone HTML
// document. Labels with a zero count are left out of the slices.
func PieChart(counts models.SentimentCounts) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(PieTitle, chartWidth, chartHeight),
		charts.WithTitleOpts(opts.Title{Title: PieTitle}),
	)

	items := make([]opts.PieData, 0, 3)
	for _, s := range models.AllSentiments() {
		if n := counts.Get(s); n > 0 {
			items = append(items, opts.PieData{Name: s.String(), Value: n})
		}
	}
	pie.AddSeries("Sentiment", items)
	return render(pie)
}

// TimelineChart renders one line per label over the dates of rows.
func TimelineChart(rows []models.DailySentiment) (string, error) {
	dates, series := services.SeriesBySentiment(rows)

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(TimelineTitle, chartWidth, chartHeight),
		charts.WithTitleOpts(opts.Title{Title: TimelineTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)
	line.SetXAxis(dates)
	for _, s := range models.AllSentiments() {
		points := make([]opts.LineData, len(series[s]))
		for i, v := range series[s] {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.String(), points)
	}
	return render(line)
}

// WordCloudChart renders the words of view at the view's size. It must not
// be called for an empty view.
func WordCloudChart(view models.WordCloudView) (string, error) {
	if view.Empty() {
		return "", fmt.Errorf("no words for %s", view.Filter)
	}
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		initOpts(fmt.Sprintf("WordCloud for %s Comments", view.Filter),
			fmt.Sprintf("%dpx", view.Width), fmt.Sprintf("%dpx", view.Height)),
	)

	items := make([]opts.WordCloudData, len(view.Words))
	for i, w := range view.Words {
		items[i] = opts.WordCloudData{Name: w.Word, Value: w.Count}
	}
	wc.AddSeries("words", items)
	return render(wc)
}

type renderer interface {
	Render(w io.Writer) error
}

func render(c renderer) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.String(), nil
}
