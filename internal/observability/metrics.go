package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	// Registry holds only hexword collectors so a run can be dumped to a
	// textfile without Go runtime noise.
	Registry = prometheus.NewRegistry()

	conversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hexword",
			Subsystem: "convert",
			Name:      "runs_total",
			Help:      "Conversions by result.",
		},
		[]string{"result"},
	)
	conversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hexword",
			Subsystem: "convert",
			Name:      "run_duration_seconds",
			Help:      "Conversion duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"result"},
	)
	wordsDecoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hexword",
			Subsystem: "codec",
			Name:      "words_total",
			Help:      "Word tokens decoded.",
		},
	)
	nibblesDecoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hexword",
			Subsystem: "codec",
			Name:      "nibbles_total",
			Help:      "Nibbles appended to the intermediate buffer.",
		},
	)
	bytesEncoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hexword",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Output bytes packed from nibble pairs.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		Registry.MustRegister(conversions, conversionDuration, wordsDecoded, nibblesDecoded, bytesEncoded)
	})
}

func RecordConversion(result string, duration time.Duration) {
	RegisterMetrics()
	conversions.WithLabelValues(result).Inc()
	conversionDuration.WithLabelValues(result).Observe(duration.Seconds())
}

func RecordPayload(words, nibbles, bytes int) {
	RegisterMetrics()
	wordsDecoded.Add(float64(words))
	nibblesDecoded.Add(float64(nibbles))
	bytesEncoded.Add(float64(bytes))
}

// WriteMetricsFile dumps the registry in Prometheus text format, suitable for
// a node_exporter textfile collector.
func WriteMetricsFile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, Registry)
}
