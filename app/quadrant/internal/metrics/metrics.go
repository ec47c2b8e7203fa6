package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkbookLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrant_workbook_loads_total",
		Help: "The total number of workbook loads by status",
	}, []string{"status"})

	WorkbookLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quadrant_workbook_load_duration_seconds",
		Help:    "Duration of reading and parsing the indicator workbook",
		Buckets: prometheus.DefBuckets,
	})

	WorkbookObservations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quadrant_workbook_observations",
		Help: "Number of observation rows in the most recently loaded workbook",
	})

	Snapshots = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrant_snapshots_total",
		Help: "The total number of quadrant snapshots computed by status",
	}, []string{"status"})

	QuadrantAssignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrant_assignments_total",
		Help: "Risk categories assigned to each quadrant across all snapshots",
	}, []string{"quadrant"})

	ChartRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quadrant_chart_render_duration_seconds",
		Help:    "Duration of rendering the quadrant chart to PNG",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	InsightRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quadrant_insight_request_duration_seconds",
		Help:    "Duration of LLM insight requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})
)
