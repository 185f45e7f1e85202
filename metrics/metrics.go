// Package metrics exports Tsetlin machine training progress as Prometheus metrics
package metrics

import "github.com/prometheus/client_golang/prometheus"

import "github.com/neurlang/tsetlin/machine"

const namespace = "tsetlin"

// Collector implements machine.Observer. Register it once per registry.
type Collector struct {
	epochs   prometheus.Counter
	samples  prometheus.Counter
	feedback *prometheus.CounterVec
	updates  *prometheus.CounterVec
	included prometheus.Gauge
	accuracy prometheus.Gauge
	duration prometheus.Histogram
}

// New creates the collector and registers its metrics on reg
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		// epochs counts finished training epochs
		epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "training",
			Name:      "epochs_total",
			Help:      "Total training epochs completed",
		}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "training",
			Name:      "samples_total",
			Help:      "Total samples presented to the feedback engine",
		}),
		// feedback counts clauses selected for feedback.
		// Labels: type (type_i, type_ii)
		feedback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_total",
			Help:      "Total clauses that received feedback by type",
		}, []string{"type"}),
		// updates counts automaton transitions.
		// Labels: kind (reward, penalize)
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "automaton_updates_total",
			Help:      "Total automaton state transitions by kind",
		}, []string{"kind"}),
		included: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "training",
			Name:      "included_literals",
			Help:      "Literals included over all clauses after the last epoch",
		}),
		accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "training",
			Name:      "accuracy",
			Help:      "Accuracy measured after the last epoch",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "training",
			Name:      "epoch_duration_seconds",
			Help:      "Wall time of one training epoch",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	for _, m := range []prometheus.Collector{c.epochs, c.samples, c.feedback, c.updates, c.included, c.accuracy, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveEpoch records the statistics of one epoch
func (c *Collector) ObserveEpoch(s machine.EpochStats) {
	c.epochs.Inc()
	c.samples.Add(float64(s.Samples))
	c.feedback.WithLabelValues("type_i").Add(float64(s.Feedback.TypeI))
	c.feedback.WithLabelValues("type_ii").Add(float64(s.Feedback.TypeII))
	c.updates.WithLabelValues("reward").Add(float64(s.Feedback.Rewards))
	c.updates.WithLabelValues("penalize").Add(float64(s.Feedback.Penalties))
	c.included.Set(float64(s.Included))
	c.duration.Observe(s.Duration.Seconds())
}

// ObserveAccuracy records the accuracy measured after an epoch
func (c *Collector) ObserveAccuracy(accuracy float64) {
	c.accuracy.Set(accuracy)
}
