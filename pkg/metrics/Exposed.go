package metrics

import "github.com/prometheus/client_golang/prometheus"

var Ensure = NewCounter("ensure_total", "Ensure calls by service and result", []string{"service", "result"})
var ContainerStarts = NewCounter("container_starts_total", "Containers started by service", []string{"service"})
var HealthRounds = NewCounter("health_rounds_total", "Health check rounds by service and result", []string{"service", "result"})
var PortAllocations = NewCounter("port_allocations_total", "External ports handed out", []string{})
var Containers = NewGauge("containers", "Containers seen on the runtime by status", []string{"status"})
var CheckDuration = NewHistogram("check_duration_seconds", "Time until a service passed or gave up its health check", []string{"service"}, prometheus.ExponentialBuckets(0.5, 2, 12))
