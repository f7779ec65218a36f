// Package metrics provides Prometheus instrumentation for the API and the
// scheduler. Collectors live on a per-process registry instead of the global
// default so tests can build isolated instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salesspark"

// Metrics owns the registry and every collector the service exports.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	LeadsScored     *prometheus.CounterVec
	LeadScores      prometheus.Histogram
	Campaigns       *prometheus.CounterVec
	ChatTurns       *prometheus.CounterVec
	WeeklyReports   *prometheus.CounterVec
	TasksProcessed  *prometheus.CounterVec
}

// New builds a registry with process and Go runtime collectors plus the
// service collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route", "status"},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		LeadsScored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "leads_scored_total",
				Help:      "Leads scored and stored, by category",
			},
			[]string{"category"},
		),
		LeadScores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lead_score",
				Help:      "Distribution of computed lead scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		Campaigns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaigns_created_total",
				Help:      "Campaigns created, by platform",
			},
			[]string{"platform"},
		),
		ChatTurns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_turns_total",
				Help:      "Assistant turns answered, by intent",
			},
			[]string{"intent"},
		),
		WeeklyReports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weekly_reports_total",
				Help:      "Weekly reports generated, by data source",
			},
			[]string{"data_source"},
		),
		TasksProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheduler_tasks_total",
				Help:      "Background tasks processed, by type and outcome",
			},
			[]string{"task", "status"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GinMiddleware records duration and count per matched route. Unmatched
// paths share one label to keep cardinality bounded.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// RecordRequest records metrics for an HTTP request.
func (m *Metrics) RecordRequest(method, route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
}

// RecordLeadScored counts a stored lead and observes its score.
func (m *Metrics) RecordLeadScored(category string, score int) {
	m.LeadsScored.WithLabelValues(category).Inc()
	m.LeadScores.Observe(float64(score))
}

// RecordCampaignCreated counts a stored campaign.
func (m *Metrics) RecordCampaignCreated(platform string) {
	m.Campaigns.WithLabelValues(platform).Inc()
}

// RecordChatTurn counts an answered assistant message.
func (m *Metrics) RecordChatTurn(intent string) {
	m.ChatTurns.WithLabelValues(intent).Inc()
}

// RecordWeeklyReport counts a generated weekly report.
func (m *Metrics) RecordWeeklyReport(dataSource string) {
	m.WeeklyReports.WithLabelValues(dataSource).Inc()
}

// RecordTask counts a processed background task.
func (m *Metrics) RecordTask(task string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.TasksProcessed.WithLabelValues(task, status).Inc()
}
