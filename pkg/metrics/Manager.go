package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (c *Counter) Register() {
	prometheus.MustRegister(c.metric)
}

func (c *Counter) Increment(labels ...string) {
	c.metric.WithLabelValues(labels...).Inc()
}

func (c *Counter) Get() *prometheus.CounterVec {
	return c.metric
}

func (g *Gauge) Register() {
	prometheus.MustRegister(g.metric)
}

func (g *Gauge) Set(value float64, labels ...string) {
	g.metric.WithLabelValues(labels...).Set(value)
}

func (g *Gauge) Reset() {
	g.metric.Reset()
}

func (g *Gauge) Get() *prometheus.GaugeVec {
	return g.metric
}

func (h *Histogram) Register() {
	prometheus.MustRegister(h.metric)
}

func (h *Histogram) Observe(value float64, labels ...string) {
	h.metric.WithLabelValues(labels...).Observe(value)
}

func (h *Histogram) Get() *prometheus.HistogramVec {
	return h.metric
}

// Handler serves everything registered on the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
