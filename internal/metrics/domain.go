package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Search rail evaluations by outcome",
		},
		[]string{"rail", "outcome"}, // outcome: all / match / fallback / empty
	)

	dialogueIntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogue_intents_total",
			Help:      "Classified free-text advisor messages",
		},
		[]string{"intent"},
	)

	dialogueTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogue_transitions_total",
			Help:      "Advisor sessions entering a stage",
		},
		[]string{"stage"},
	)

	leadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_total",
			Help:      "Submitted demo and contact requests",
		},
		[]string{"kind"},
	)
)

var registerOnce sync.Once

// Recorder reports search and advisor events to Prometheus.
type Recorder struct{}

// NewRecorder registers the domain collectors on first use and returns a recorder.
func NewRecorder() *Recorder {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchQueriesTotal, dialogueIntentsTotal, dialogueTransitionsTotal, leadsTotal)
	})
	return &Recorder{}
}

// SearchQuery counts one rail evaluation.
func (*Recorder) SearchQuery(rail, outcome string) {
	searchQueriesTotal.WithLabelValues(rail, outcome).Inc()
}

// Intent counts one classified message.
func (*Recorder) Intent(intent string) {
	dialogueIntentsTotal.WithLabelValues(intent).Inc()
}

// Transition counts a session entering stage.
func (*Recorder) Transition(stage string) {
	dialogueTransitionsTotal.WithLabelValues(stage).Inc()
}

// Lead counts a captured lead.
func (*Recorder) Lead(kind string) {
	leadsTotal.WithLabelValues(kind).Inc()
}
