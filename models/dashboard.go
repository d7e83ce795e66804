package models

// KPI is a single headline number on the dashboard.
type KPI struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
}

// TimeSeriesPoint is one day of a dashboard time series.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TimeSeries is a named series of daily values.
type TimeSeries struct {
	Name   string            `json:"name"`
	Points []TimeSeriesPoint `json:"points"`
}

const (
	DashboardOK      = "ok"
	DashboardNoRange = "no_range"
	DashboardError   = "error"
)

// Dashboard is the payload returned to dashboard pages. When Status is not
// "ok", Message holds a short human-readable prompt and the data is empty.
type Dashboard struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Range   *DateRangeSelection `json:"range,omitempty"`
	KPIs    []KPI               `json:"kpis"`
	Series  []TimeSeries        `json:"series"`
}

// KPIResponse is the upstream envelope of the KPI endpoint.
type KPIResponse struct {
	KPIs []KPI `json:"kpis"`
}

// TimeSeriesResponse is the upstream envelope of the time-series endpoint.
type TimeSeriesResponse struct {
	Series []TimeSeries `json:"series"`
}
