package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "trivia"

// TriviaMetrics counts game activity for Prometheus. It implements
// ports.ActivityRecorder.
type TriviaMetrics struct {
	created  prometheus.Counter
	deleted  prometheus.Counter
	searches *prometheus.CounterVec
	draws    *prometheus.CounterVec
	imported prometheus.Counter
	skipped  prometheus.Counter
}

// NewTriviaMetrics registers the counters with reg.
// Passing prometheus.DefaultRegisterer exposes them through promhttp.Handler.
func NewTriviaMetrics(reg prometheus.Registerer) *TriviaMetrics {
	factory := promauto.With(reg)

	return &TriviaMetrics{
		created: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "questions_created_total",
			Help:      "Questions created through the API or the importer.",
		}),
		deleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "questions_deleted_total",
			Help:      "Questions deleted through the API.",
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "searches_total",
			Help:      "Question searches by result.",
		}, []string{"result"}),
		draws: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "quiz_draws_total",
			Help:      "Quiz question draws by outcome.",
		}, []string{"outcome"}),
		imported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "questions_imported_total",
			Help:      "Questions inserted by the importer.",
		}),
		skipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "questions_import_skipped_total",
			Help:      "Upstream questions skipped by the importer.",
		}),
	}
}

// QuestionCreated counts one created question.
func (m *TriviaMetrics) QuestionCreated() { m.created.Inc() }

// QuestionDeleted counts one deleted question.
func (m *TriviaMetrics) QuestionDeleted() { m.deleted.Inc() }

// SearchPerformed counts a search, labelled hit or miss.
func (m *TriviaMetrics) SearchPerformed(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}

	m.searches.WithLabelValues(result).Inc()
}

// QuizDraw counts a quiz draw, labelled drawn or exhausted.
func (m *TriviaMetrics) QuizDraw(exhausted bool) {
	outcome := "drawn"
	if exhausted {
		outcome = "exhausted"
	}

	m.draws.WithLabelValues(outcome).Inc()
}

// ImportFinished records the totals of one importer run.
func (m *TriviaMetrics) ImportFinished(imported, skipped int) {
	m.imported.Add(float64(imported))
	m.skipped.Add(float64(skipped))
}
