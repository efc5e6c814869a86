// Package chart renders a period's daily counts as a PNG line chart.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sneezelab/SneezeBot/app/models"
)

var seriesColor = drawing.ColorFromHex("4caf50")

// Render draws the line-plus-filled-area chart for a range scan result.
// It returns (nil, nil) for empty input; the caller is expected to send a
// text fallback instead of a photo.
func Render(rows []models.DailyCount, title string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	xs := make([]time.Time, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(models.DayFormat, row.Day)
		if err != nil {
			return nil, fmt.Errorf("bad day %q in chart data: %w", row.Day, err)
		}
		xs = append(xs, day)
		ys = append(ys, float64(row.Count))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Статистика чиханий: %s", title),
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			Name:  "Дата",
			Ticks: dayTicks(xs),
		},
		YAxis: chart.YAxis{
			Name: "Количество чиханий",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: seriesColor,
					StrokeWidth: 2,
					FillColor:   seriesColor.WithAlpha(80),
					DotColor:    seriesColor,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// dayTicks places one tick per day for week-sized ranges and roughly ten
// evenly spaced ticks for anything longer.
func dayTicks(xs []time.Time) []chart.Tick {
	step := 1
	if len(xs) > 7 {
		step = len(xs) / 10
		if step < 1 {
			step = 1
		}
	}

	var ticks []chart.Tick
	for i := 0; i < len(xs); i += step {
		ticks = append(ticks, chart.Tick{
			Value: float64(xs[i].UnixNano()), // TimeSeries x values are unix nanos
			Label: xs[i].Format("02.01"),
		})
	}
	// Always close the axis on the last day.
	last := xs[len(xs)-1]
	if len(ticks) == 0 || ticks[len(ticks)-1].Value != float64(last.UnixNano()) {
		ticks = append(ticks, chart.Tick{
			Value: float64(last.UnixNano()),
			Label: last.Format("02.01"),
		})
	}
	return ticks
}
