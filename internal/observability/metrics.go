package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kvadmin",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"app", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kvadmin",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "method", "path", "status"},
	)
	consoleCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kvadmin",
			Subsystem: "console",
			Name:      "commands_total",
			Help:      "Console commands by outcome.",
		},
		[]string{"app", "command", "outcome"},
	)
	consoleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kvadmin",
			Subsystem: "console",
			Name:      "command_duration_seconds",
			Help:      "Console command execution duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "command", "outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, consoleCommands, consoleDuration)
	})
}

func RecordHTTPRequest(app, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(app, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(app, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordConsoleCommand(app, command, outcome string, duration time.Duration) {
	RegisterMetrics()
	consoleCommands.WithLabelValues(app, command, outcome).Inc()
	consoleDuration.WithLabelValues(app, command, outcome).Observe(duration.Seconds())
}
