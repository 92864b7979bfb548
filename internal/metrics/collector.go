package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

// Collector gathers per-run samples during an experiment. It is safe for
// concurrent use by parallel runs.
type Collector struct {
	mu sync.RWMutex

	startTime time.Time
	endTime   time.Time

	// metric name -> label key -> samples
	samples map[string]map[string][]float64
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		samples:   make(map[string]map[string][]float64),
	}
}

// Stop marks the end of metric collection
func (c *Collector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endTime = time.Now()
}

// Duration returns the time between Start and Stop, or until now while running
func (c *Collector) Duration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.endTime.IsZero() {
		return time.Since(c.startTime)
	}
	return c.endTime.Sub(c.startTime)
}

// Record records one sample of a metric
func (c *Collector) Record(name string, value float64, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := labelKey(labels)
	if c.samples[name] == nil {
		c.samples[name] = make(map[string][]float64)
	}
	c.samples[name][key] = append(c.samples[name][key], value)
}

// GetAggregation returns aggregated statistics for a metric, nil if it has no samples
func (c *Collector) GetAggregation(name string, labels map[string]string) *models.Aggregation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.samples[name] == nil {
		return nil
	}
	return calculateAggregation(c.samples[name][labelKey(labels)])
}

// Aggregations returns every metric recorded under labels, keyed by metric name
func (c *Collector) Aggregations(labels map[string]string) map[string]*models.Aggregation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := labelKey(labels)
	out := make(map[string]*models.Aggregation)
	for name, byLabel := range c.samples {
		if agg := calculateAggregation(byLabel[key]); agg != nil {
			out[name] = agg
		}
	}
	return out
}

// GetMetricNames returns all metric names that have been collected, sorted
func (c *Collector) GetMetricNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.samples))
	for name := range c.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear drops all collected samples and restarts the collection window
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.samples = make(map[string]map[string][]float64)
	c.startTime = time.Now()
	c.endTime = time.Time{}
}

// labelKey creates a key from labels for map lookup
func labelKey(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
		b.WriteByte(',')
	}
	return b.String()
}

// calculateAggregation calculates aggregated statistics from samples
func calculateAggregation(samples []float64) *models.Aggregation {
	if len(samples) == 0 {
		return nil
	}

	values := make([]float64, len(samples))
	copy(values, samples)
	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return &models.Aggregation{
		Count: int64(len(values)),
		Sum:   sum,
		Min:   values[0],
		Max:   values[len(values)-1],
		Mean:  sum / float64(len(values)),
		P50:   median(values),
	}
}

// median returns the middle value of a sorted slice
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
