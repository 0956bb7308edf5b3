package scheduler

//go:generate go tool mockery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"domainscout/internal/domain"
)

const (
	DefaultBatchSize = 2
	DefaultMinRPS    = 0.2
)

type BatchChecker interface {
	CheckBatch(ctx context.Context, domains []string) []domain.Outcome
}

// Sink receives outcomes in order. Done is called exactly once when the
// run ends, whatever the reason.
type Sink interface {
	Emit(ctx context.Context, o domain.Outcome) error
	Done() error
}

type Observer interface {
	ObserveOutcome(status domain.Status)
}

type Config struct {
	BatchSize int
	MinRPS    float64
	// MaxRPS of zero leaves the rate unbounded above.
	MaxRPS float64
}

// ClampRate keeps the requested rate inside [MinRPS, MaxRPS].
func (c Config) ClampRate(rps float64) float64 {
	minRPS := c.MinRPS
	if minRPS <= 0 {
		minRPS = DefaultMinRPS
	}
	if math.IsNaN(rps) || rps < minRPS {
		return minRPS
	}
	if c.MaxRPS > 0 && rps > c.MaxRPS {
		return c.MaxRPS
	}
	return rps
}

// Interval is the minimum spacing between batch starts.
func (c Config) Interval(rps float64) time.Duration {
	return time.Duration(math.Round(float64(time.Second) / c.ClampRate(rps)))
}

func Partition(domains []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return slices.Collect(slices.Chunk(domains, size))
}

type Option func(*Scheduler)

func WithObserver(o Observer) Option {
	return func(s *Scheduler) { s.observer = o }
}

// Scheduler dispatches a job's candidates in fixed-size batches, one batch
// at a time, paced by a token bucket with a burst of one.
type Scheduler struct {
	checker  BatchChecker
	cfg      Config
	logger   *slog.Logger
	observer Observer
}

func New(checker BatchChecker, cfg Config, logger *slog.Logger, opts ...Option) *Scheduler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	s := &Scheduler{
		checker:  checker,
		cfg:      cfg,
		logger:   logger,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes the job until every batch is emitted, ctx ends or the sink
// stops accepting records. Cancellation is not an error: it marks the job
// cancelled and returns nil. A panicking batch stops dispatch and is
// reported as an error. The sink's Done is called on every path.
func (s *Scheduler) Run(ctx context.Context, job *domain.Job, sink Sink) (err error) {
	rps := s.cfg.ClampRate(job.RPS)
	job.RPS = rps
	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	batches := Partition(job.Candidates, s.cfg.BatchSize)

	logger := s.logger.With(slog.String("job_id", job.ID))
	logger.Info("job started",
		slog.Int("domains", len(job.Candidates)),
		slog.Int("batches", len(batches)),
		slog.Float64("rps", rps),
		slog.Duration("interval", s.cfg.Interval(rps)))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("batch dispatch panicked", slog.Any("panic", r))
			err = fmt.Errorf("batch dispatch panicked: %v", r)
		}
		if doneErr := sink.Done(); doneErr != nil {
			logger.Info("done record not delivered", slog.String("error", doneErr.Error()))
		}
		logger.Info("job finished",
			slog.Int("processed", job.Processed),
			slog.Int("available", job.Available),
			slog.Int("unavailable", job.Unavailable),
			slog.Int("unknown", job.Unknown),
			slog.Bool("cancelled", job.Cancelled))
	}()

	for _, batch := range batches {
		if ctx.Err() != nil {
			job.Cancelled = true
			return nil
		}
		if err := limiter.Wait(ctx); err != nil {
			job.Cancelled = true
			return nil
		}

		for _, o := range s.checker.CheckBatch(ctx, batch) {
			if ctx.Err() != nil {
				job.Cancelled = true
				return nil
			}
			if err := sink.Emit(ctx, o); err != nil {
				logger.Info("stream closed by consumer", slog.String("error", err.Error()))
				job.Cancelled = true
				return nil
			}
			job.Count(o)
			s.observer.ObserveOutcome(o.Status())
		}
	}
	return nil
}

type nopObserver struct{}

func (nopObserver) ObserveOutcome(domain.Status) {}

func (s *Scheduler) ClampRate(rps float64) float64 {
	return s.cfg.ClampRate(rps)
}
