package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

// InfraMetric is one periodic process sample. Pool fields stay zero when no
// database is configured.
type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	PrefsHits     int64
	PrefsMisses   int64
	PrefsHitRatio float64
	ActiveJobs    int64
	Goroutines    int
	HeapAllocMB   float64
}
