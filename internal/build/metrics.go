package build

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BuildMetrics инкапсулирует Prometheus-метрики строительного конвейера.
// Метрики опциональны: менеджер с nil-метриками работает без учёта.
//
// Метрики:
// * build_operations_total{kind,operation,outcome} — counter
// * build_intents_total{kind,operation,phase} — counter (phase=evaluate|execute)
type BuildMetrics struct {
	operations *prometheus.CounterVec
	intents    *prometheus.CounterVec
}

// NewBuildMetrics создаёт метрики и регистрирует их в дефолтном регистре.
func NewBuildMetrics() *BuildMetrics {
	bm := &BuildMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "build",
			Name:      "operations_total",
			Help:      "Исходы поклеточных строительных операций.",
		}, []string{"kind", "operation", "outcome"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "build",
			Name:      "intents_total",
			Help:      "Обработанные строительные намерения по фазам.",
		}, []string{"kind", "operation", "phase"}),
	}

	prometheus.MustRegister(bm.operations, bm.intents)
	return bm
}

func (bm *BuildMetrics) observeResult(phase string, res BuildResult) {
	if bm == nil {
		return
	}
	kind := res.Intent.Kind().String()
	op := res.Intent.Operation().String()

	bm.intents.WithLabelValues(kind, op, phase).Inc()
	for _, r := range res.Results {
		bm.operations.WithLabelValues(kind, op, r.Outcome.String()).Inc()
	}
}
