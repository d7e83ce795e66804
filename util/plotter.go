package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"tourism-server/models"
)

// RenderRouteMap writes an HTML page plotting the route polyline, start and
// end labelled. Routes without geometry render an empty map.
func RenderRouteMap(w io.Writer, rec models.RouteRecord) error {
	points := make([]opts.GeoData, 0, len(rec.Polyline))
	for i, p := range rec.Polyline {
		name := fmt.Sprintf("#%d", i)
		switch i {
		case 0:
			name = rec.From
		case len(rec.Polyline) - 1:
			name = rec.To
		}
		// echarts geo coordinates are [lng, lat]
		points = append(points, opts.GeoData{Name: name, Value: []float64{p[1], p[0]}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Route Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s → %s", rec.From, rec.To),
			Subtitle: string(rec.Type),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Route", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render route map: %w", err)
	}
	return nil
}

// RenderTimeSeries writes an HTML line chart with one line per series. The
// x axis is the union of dates in order of first appearance.
func RenderTimeSeries(w io.Writer, title string, series []models.TimeSeries) error {
	var dates []string
	seen := make(map[string]struct{})
	for _, s := range series {
		for _, p := range s.Points {
			if _, ok := seen[p.Date]; !ok {
				seen[p.Date] = struct{}{}
				dates = append(dates, p.Date)
			}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates)

	for _, s := range series {
		byDate := make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			byDate[p.Date] = p.Value
		}
		data := make([]opts.LineData, 0, len(dates))
		for _, d := range dates {
			if v, ok := byDate[d]; ok {
				data = append(data, opts.LineData{Value: v})
			} else {
				data = append(data, opts.LineData{Value: "-"})
			}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render time series: %w", err)
	}
	return nil
}
