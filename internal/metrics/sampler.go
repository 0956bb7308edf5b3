package metrics

import (
	"context"
	"runtime"
	"time"
)

const DefaultSampleInterval = 10 * time.Second

// Sampler takes periodic process snapshots and hands them to every
// recorder.
type Sampler struct {
	pool      PoolStater
	prefs     CacheStater
	jobs      JobCounter
	recorders []InfraRecorder
	now       func() time.Time
}

type SamplerOption func(*Sampler)

// WithPool adds connection pool stats. Pass an untyped nil to skip.
func WithPool(p PoolStater) SamplerOption {
	return func(s *Sampler) { s.pool = p }
}

func WithPrefs(c CacheStater) SamplerOption {
	return func(s *Sampler) { s.prefs = c }
}

func WithJobs(j JobCounter) SamplerOption {
	return func(s *Sampler) { s.jobs = j }
}

func NewSampler(recorders []InfraRecorder, opts ...SamplerOption) *Sampler {
	s := &Sampler{recorders: recorders, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sampler) Sample() InfraMetric {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := InfraMetric{
		Time:        s.now(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAllocMB: float64(memStats.HeapAlloc) / 1024 / 1024,
	}
	if s.pool != nil {
		stat := s.pool.Stat()
		m.PoolAcquired = int(stat.AcquiredConns())
		m.PoolIdle = int(stat.IdleConns())
		m.PoolTotal = int(stat.TotalConns())
		m.PoolMax = int(stat.MaxConns())
	}
	if s.prefs != nil {
		hits, misses, ratio := s.prefs.Stats()
		m.PrefsHits = int64(hits)
		m.PrefsMisses = int64(misses)
		m.PrefsHitRatio = ratio
	}
	if s.jobs != nil {
		m.ActiveJobs = int64(s.jobs.ActiveJobs())
	}
	return m
}

// Run records a sample every interval until ctx is done.
func (s *Sampler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m := s.Sample()
			for _, r := range s.recorders {
				r.RecordInfra(m)
			}
		}
	}
}
