package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the service's collectors. A nil *Metrics records nothing.
type Metrics struct {
	AnswersSubmitted   *prometheus.CounterVec
	Generations        *prometheus.CounterVec
	FormsFilled        *prometheus.CounterVec
	SkippedFields      *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	ActiveSessions     prometheus.Gauge
}

// NewMetrics registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AnswersSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "benefit_answers_submitted_total",
			Help: "Answers submitted by question section",
		}, []string{"section"}),

		Generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "benefit_generations_total",
			Help: "Archive generations by outcome",
		}, []string{"outcome"}),

		FormsFilled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "benefit_forms_filled_total",
			Help: "Filled PDF forms by template",
		}, []string{"template"}),

		SkippedFields: f.NewCounterVec(prometheus.CounterOpts{
			Name: "benefit_skipped_fields_total",
			Help: "Fields that could not be written, by template",
		}, []string{"template"}),

		GenerationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "benefit_generation_duration_seconds",
			Help:    "Duration of a full archive generation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "benefit_active_sessions",
			Help: "Sessions currently held in memory",
		}),
	}
}

func (m *Metrics) IncAnswer(section int) {
	if m != nil {
		m.AnswersSubmitted.WithLabelValues(strconv.Itoa(section)).Inc()
	}
}

func (m *Metrics) IncGeneration(outcome string) {
	if m != nil {
		m.Generations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncFormFilled(template string, skipped int) {
	if m != nil {
		m.FormsFilled.WithLabelValues(template).Inc()
		if skipped > 0 {
			m.SkippedFields.WithLabelValues(template).Add(float64(skipped))
		}
	}
}

func (m *Metrics) ObserveGeneration(d time.Duration) {
	if m != nil {
		m.GenerationDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) SetActiveSessions(n int) {
	if m != nil {
		m.ActiveSessions.Set(float64(n))
	}
}
