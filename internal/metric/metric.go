package metric

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/gostonefire/collisionbench/internal/report"
	"github.com/rs/zerolog/log"
)

// Metric names
const (
	InsertLatency = "collisionbench.insert_latency"
	SearchLatency = "collisionbench.search_latency"
	Collisions    = "collisionbench.collisions"
	GapMin        = "collisionbench.gap_min"
	GapMax        = "collisionbench.gap_max"
	GapAvg        = "collisionbench.gap_avg"
	Found         = "collisionbench.found"
	LongestChain  = "collisionbench.longest_chain"
)

// Tag names
const (
	TagFamily    = "family"
	TagVariant   = "variant"
	TagTableSize = "table_size"
	TagRecords   = "records"
)

// full sampling, every run is published
const samplingRate = 1.0

// Publisher - Publishes the measurements of one run
type Publisher interface {
	Publish(row report.Row)
	Close() error
}

// NoOp - Publisher used when metrics are disabled
type NoOp struct{}

// Publish - Does nothing
func (N NoOp) Publish(report.Row) {}

// Close - Does nothing
func (N NoOp) Close() error { return nil }

// StatsD - Publisher sending gauges and timings to a StatsD agent
type StatsD struct {
	client statsd.ClientInterface
}

// NewStatsD - Returns a StatsD publisher connected to address, e.g. localhost:8125
func NewStatsD(address string) (publisher *StatsD, err error) {
	client, err := statsd.New(address, statsd.WithTags([]string{TagAsString("app", "collisionbench")}))
	if err != nil {
		err = fmt.Errorf("error while creating statsd client: %w", err)
		return
	}

	log.Info().Msgf("metrics client initialized with address %s", address)

	return NewStatsDWithClient(client), nil
}

// NewStatsDWithClient - Returns a StatsD publisher on an existing client
func NewStatsDWithClient(client statsd.ClientInterface) *StatsD {
	return &StatsD{client: client}
}

// Publish - Sends all measurements of row tagged with family, variant, table size and record count.
// Send failures are logged and otherwise ignored.
func (S *StatsD) Publish(row report.Row) {
	tags := BuildTags(row)

	S.timing(InsertLatency, time.Duration(row.InsertMillis)*time.Millisecond, tags)
	S.timing(SearchLatency, time.Duration(row.SearchMillis)*time.Millisecond, tags)
	S.gauge(Collisions, float64(row.Collisions), tags)
	S.gauge(GapMin, float64(row.GapMin), tags)
	S.gauge(GapMax, float64(row.GapMax), tags)
	S.gauge(GapAvg, float64(row.GapAvg), tags)
	S.gauge(Found, float64(row.Found), tags)
	S.gauge(LongestChain, float64(row.LongestChain), tags)
}

// Close - Flushes buffered metrics and closes the client
func (S *StatsD) Close() (err error) {
	err = S.client.Close()
	if err != nil {
		err = fmt.Errorf("error while closing statsd client: %w", err)
	}

	return
}

func (S *StatsD) timing(name string, value time.Duration, tags []string) {
	if err := S.client.Timing(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msgf("error occurred while doing statsd timing %s", name)
	}
}

func (S *StatsD) gauge(name string, value float64, tags []string) {
	if err := S.client.Gauge(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msgf("error occurred while doing statsd gauge %s", name)
	}
}

// BuildTags - Returns the tags identifying the run behind row
func BuildTags(row report.Row) []string {
	return []string{
		TagAsString(TagFamily, row.Family),
		TagAsString(TagVariant, row.Variant),
		TagAsString(TagTableSize, strconv.FormatInt(row.TableSize, 10)),
		TagAsString(TagRecords, strconv.FormatInt(row.Records, 10)),
	}
}

// TagAsString - Returns a StatsD tag in key:value form
func TagAsString(key, value string) string {
	return key + ":" + value
}
