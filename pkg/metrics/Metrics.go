package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	counter.Register()
	return counter
}

func NewGauge(name string, help string, labels []string) *Gauge {
	gauge := &Gauge{
		metric: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	gauge.Register()
	return gauge
}

func NewHistogram(name string, help string, labels []string, buckets []float64) *Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
				Buckets:   buckets,
			},
			labels,
		),
	}

	histogram.Register()
	return histogram
}
