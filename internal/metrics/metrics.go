package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"frictionless/internal/db"
)

var (
	queryLookupDesc = prometheus.NewDesc(
		"frictionless_query_lookups_total",
		"Total query router lookup count by outcome",
		[]string{"target", "outcome"},
		nil,
	)
)

// QueryCollector is a custom Prometheus collector that reads query lookup
// counts from the database on each scrape.
type QueryCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *QueryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queryLookupDesc
}

// Collect queries the database for all query lookups and emits them as counters.
func (c *QueryCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.db.GetAllQueryLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect query lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			queryLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Target,
			l.Outcome,
		)
	}
}

// Recorder provides async query lookup recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&QueryCollector{db: database})
	})
}

// RecordQueryLookup asynchronously records a query lookup outcome.
func RecordQueryLookup(target, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementQueryLookup(context.Background(), target, outcome); err != nil {
			slog.Error("failed to record query lookup", "target", target, "outcome", outcome, "error", err)
		}
	}()
}
