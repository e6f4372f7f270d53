package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"portfolio/internal/store"
)

var statusDesc = prometheus.NewDesc(
	"portfolio_recommendations",
	"Recommendation count by moderation status",
	[]string{"status"},
	nil,
)

// StatusCollector is a custom Prometheus collector that reads recommendation
// counts from the store on each scrape.
type StatusCollector struct {
	store *store.Store
}

// Describe sends the metric descriptor to the channel.
func (c *StatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- statusDesc
}

// Collect counts records by status and emits them as gauges.
func (c *StatusCollector) Collect(ch chan<- prometheus.Metric) {
	for status, count := range c.store.CountByStatus() {
		ch <- prometheus.MustNewConstMetric(
			statusDesc,
			prometheus.GaugeValue,
			float64(count),
			status,
		)
	}
}

var (
	submissionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_recommendation_submissions_total",
		Help: "Total accepted recommendation submissions",
	})
	moderationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_moderation_actions_total",
		Help: "Total moderation actions by outcome",
	}, []string{"action"})
	contactTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_contact_messages_total",
		Help: "Total accepted contact form submissions",
	})
	chatTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_chat_answers_total",
		Help: "Total chat answers by source",
	}, []string{"source"})
)

var initOnce sync.Once

// Init registers all collectors. Must be called once at startup.
func Init(st *store.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&StatusCollector{store: st},
			submissionsTotal,
			moderationTotal,
			contactTotal,
			chatTotal,
		)
	})
}

// RecordSubmission counts an accepted recommendation submission.
func RecordSubmission() {
	submissionsTotal.Inc()
}

// RecordModeration counts a moderation action ("approved" or "rejected").
func RecordModeration(action string) {
	moderationTotal.WithLabelValues(action).Inc()
}

// RecordContact counts an accepted contact form submission.
func RecordContact() {
	contactTotal.Inc()
}

// RecordChatAnswer counts a chat answer by source.
func RecordChatAnswer(source string) {
	chatTotal.WithLabelValues(source).Inc()
}
