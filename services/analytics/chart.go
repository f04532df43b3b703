package analytics

import (
	"bytes"
	"time"

	"profitpilot/models"
	"profitpilot/utils"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderForecastPNG draws the observed daily purchase counts with the
// forecast line and its prediction band.
func RenderForecastPNG(history []DailyCount, forecast []models.ForecastPoint) ([]byte, error) {
	if len(history) == 0 && len(forecast) == 0 {
		return nil, utils.NewInputError("no data to plot")
	}

	histX := make([]time.Time, len(history))
	histY := make([]float64, len(history))
	for i, d := range history {
		histX[i] = d.Date
		histY[i] = d.Count
	}

	fcX := make([]time.Time, 0, len(forecast))
	fcY := make([]float64, 0, len(forecast))
	loY := make([]float64, 0, len(forecast))
	hiY := make([]float64, 0, len(forecast))
	for _, p := range forecast {
		day, err := time.Parse(models.DateLayout, p.Date)
		if err != nil {
			continue
		}
		fcX = append(fcX, day)
		fcY = append(fcY, p.Predicted)
		loY = append(loY, p.Lower)
		hiY = append(hiY, p.Upper)
	}

	band := drawing.Color{R: 66, G: 133, B: 244, A: 60}
	graph := chart.Chart{
		Title:  "Purchase Volume Forecast",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Observed",
				XValues: histX,
				YValues: histY,
				Style:   chart.Style{StrokeColor: chart.ColorBlack},
			},
			chart.TimeSeries{
				Name:    "Forecast",
				XValues: fcX,
				YValues: fcY,
				Style:   chart.Style{StrokeColor: chart.ColorBlue},
			},
			chart.TimeSeries{
				Name:    "Upper Bound",
				XValues: fcX,
				YValues: hiY,
				Style:   chart.Style{StrokeColor: band, StrokeDashArray: []float64{4, 4}},
			},
			chart.TimeSeries{
				Name:    "Lower Bound",
				XValues: fcX,
				YValues: loY,
				Style:   chart.Style{StrokeColor: band, StrokeDashArray: []float64{4, 4}},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, utils.NewServiceError("failed to render forecast chart", err)
	}
	return buf.Bytes(), nil
}

// RenderRevenuePNG draws weekly revenue as a bar chart.
func RenderRevenuePNG(weeks []models.WeeklyRevenue) ([]byte, error) {
	if len(weeks) == 0 {
		return nil, utils.NewInputError("no data to plot")
	}

	bars := make([]chart.Value, 0, len(weeks))
	for _, w := range weeks {
		bars = append(bars, chart.Value{Label: w.Week, Value: w.Revenue})
	}

	graph := chart.BarChart{
		Title:    "Weekly Revenue (Last 30 Days)",
		Width:    1024,
		Height:   512,
		BarWidth: 80,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, utils.NewServiceError("failed to render revenue chart", err)
	}
	return buf.Bytes(), nil
}
