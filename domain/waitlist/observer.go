package waitlist

import (
	"errors"

	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/prometheus/client_golang/prometheus"
)

type Outcome string

const (
	OutcomeStored       Outcome = "stored"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeDuplicate    Outcome = "duplicate"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeFailed       Outcome = "failed"
)

// Observer records the outcome of every submission.
//
//go:generate mockgen -source=observer.go -destination=mock_observer_test.go -package=waitlist
type Observer interface {
	ObserveSubmission(kind backend.Kind, outcome Outcome)
}

type prometheusObserver struct {
	submissions *prometheus.CounterVec
}

// NewPrometheusObserver registers waitlist_submissions_total with reg. A nil
// reg (metrics disabled) yields an observer that records nothing.
func NewPrometheusObserver(reg prometheus.Registerer) Observer {
	if reg == nil {
		return noopObserver{}
	}

	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlist_submissions_total",
			Help: "Waitlist submissions by backend and outcome.",
		},
		[]string{"backend", "outcome"},
	)

	if err := reg.Register(submissions); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return noopObserver{}
		}
		submissions = already.ExistingCollector.(*prometheus.CounterVec)
	}

	return &prometheusObserver{submissions: submissions}
}

func (o *prometheusObserver) ObserveSubmission(kind backend.Kind, outcome Outcome) {
	o.submissions.WithLabelValues(kind.String(), string(outcome)).Inc()
}

type noopObserver struct{}

func (noopObserver) ObserveSubmission(backend.Kind, Outcome) {}
