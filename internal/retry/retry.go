package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"domainscout/internal/domain"
	"domainscout/internal/upstream"
)

const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = 400 * time.Millisecond
	DefaultMaxDelay    = 10 * time.Second
)

// Attempt results reported to the observer.
const (
	ResultOK        = "ok"
	ResultTransient = "transient"
	ResultHard      = "hard"
	ResultCancelled = "cancelled"
)

//go:generate go tool mockery

type Client interface {
	Check(ctx context.Context, domains []string) ([]domain.Outcome, error)
}

type Observer interface {
	ObserveUpstream(result string, latency time.Duration)
	ObserveRetry()
	ObserveDegraded(reason string)
}

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithSleep replaces the backoff wait. The function must return the
// context error when ctx ends first.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Controller) { c.sleep = sleep }
}

// WithJitter replaces the jitter source. It receives the exponential delay
// and returns a value in [0, d).
func WithJitter(jitter func(d time.Duration) time.Duration) Option {
	return func(c *Controller) { c.jitter = jitter }
}

// Controller wraps one upstream call per batch with exponential backoff. It
// never returns an error: a batch that cannot be resolved comes back as
// unknown outcomes carrying the reason.
type Controller struct {
	client   Client
	cfg      Config
	logger   *slog.Logger
	observer Observer
	sleep    func(ctx context.Context, d time.Duration) error
	jitter   func(d time.Duration) time.Duration
}

func New(client Client, cfg Config, logger *slog.Logger, opts ...Option) *Controller {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}

	c := &Controller{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		observer: nopObserver{},
		sleep:    sleepContext,
		jitter:   uniformJitter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) CheckBatch(ctx context.Context, domains []string) []domain.Outcome {
	if len(domains) == 0 {
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.Backoff(attempt - 1)
			c.observer.ObserveRetry()
			c.logger.Debug("retrying upstream batch",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.String("error", lastErr.Error()))

			if err := c.sleep(ctx, delay); err != nil {
				return c.degrade(domains, fmt.Errorf("cancelled during backoff: %w", err))
			}
		}

		start := time.Now()
		out, err := c.client.Check(ctx, domains)
		latency := time.Since(start)

		switch {
		case err == nil:
			c.observer.ObserveUpstream(ResultOK, latency)
			return out
		case ctx.Err() != nil:
			c.observer.ObserveUpstream(ResultCancelled, latency)
			return c.degrade(domains, ctx.Err())
		case !upstream.IsTransient(err):
			c.observer.ObserveUpstream(ResultHard, latency)
			return c.degrade(domains, err)
		}

		c.observer.ObserveUpstream(ResultTransient, latency)
		lastErr = err
	}

	return c.degrade(domains, fmt.Errorf("gave up after %d attempts: %w", c.cfg.MaxAttempts, lastErr))
}

// Backoff is the wait after the given failed attempt:
// min(base*2^(attempt-1) + jitter, max) with jitter in [0, base*2^(attempt-1)).
func (c *Controller) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	exp := c.cfg.MaxDelay
	if shift := attempt - 1; shift < 32 {
		if d := c.cfg.BaseDelay << shift; d > 0 && d < c.cfg.MaxDelay {
			exp = d
		}
	}

	delay := exp + c.jitter(exp)
	if delay > c.cfg.MaxDelay || delay < 0 {
		delay = c.cfg.MaxDelay
	}
	return delay
}

func (c *Controller) degrade(domains []string, err error) []domain.Outcome {
	reason := err.Error()
	c.observer.ObserveDegraded(reason)
	c.logger.Warn("upstream batch degraded",
		slog.Int("domains", len(domains)),
		slog.String("reason", reason))

	out := make([]domain.Outcome, 0, len(domains))
	for _, name := range domains {
		out = append(out, domain.Unknown(name, reason))
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func uniformJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return rand.N(d)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(string, time.Duration) {}
func (nopObserver) ObserveRetry()                         {}
func (nopObserver) ObserveDegraded(string)                {}
