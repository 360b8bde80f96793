package metrics

import "github.com/prometheus/client_golang/prometheus"

const NAMESPACE = "dockerctl"

type Counter struct {
	metric *prometheus.CounterVec
}

type Gauge struct {
	metric *prometheus.GaugeVec
}

type Histogram struct {
	metric *prometheus.HistogramVec
}
