// Package app assembles the check pipeline from configuration. The HTTP
// server and the CLI share it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"domainscout/internal/candidate"
	"domainscout/internal/config"
	"domainscout/internal/domain"
	"domainscout/internal/jobid"
	"domainscout/internal/pricing"
	"domainscout/internal/retry"
	"domainscout/internal/scheduler"
	"domainscout/internal/service"
	"domainscout/internal/upstream"
)

// Provider is an upstream registrar client.
type Provider interface {
	Name() string
	Configured() bool
	Check(ctx context.Context, domains []string) ([]domain.Outcome, error)
}

// Observers receives pipeline events. Nil fields are ignored.
type Observers struct {
	Retry    retry.Observer
	Outcomes scheduler.Observer
	Jobs     service.JobObserver
	Business service.BusinessRecorder
}

type Pipeline struct {
	Provider  Provider
	Generator *candidate.Generator
	Scheduler *scheduler.Scheduler
	Service   *service.CheckService
	closers   []func() error
}

// NewProvider builds the configured registrar client. Prices are quoted
// with the given rules; nil rules leave prices out.
func NewProvider(cfg *config.UpstreamConfig, rules *pricing.Rules, logger *slog.Logger) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderDynadot:
		var pricer upstream.Pricer
		if rules != nil {
			pricer = rules
		}
		return upstream.NewDynadot(upstream.DynadotConfig{
			Endpoint:  cfg.DynadotEndpoint,
			APIKey:    cfg.DynadotAPIKey,
			Currency:  cfg.Currency,
			ShowPrice: cfg.DynadotShowPrice,
			Timeout:   cfg.Timeout,
		}, nil, pricer, logger), nil
	case config.ProviderLoopia:
		l, err := upstream.NewLoopia(upstream.LoopiaConfig{
			Endpoint: cfg.LoopiaEndpoint,
			Username: cfg.LoopiaUsername,
			Password: cfg.LoopiaPassword,
			Timeout:  cfg.Timeout,
		}, nil, logger)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown upstream provider %q", cfg.Provider)
	}
}

func NewPipeline(cfg *config.Config, logger *slog.Logger, obs Observers) (*Pipeline, error) {
	rules, err := pricing.Load(cfg.Pricing.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	provider, err := NewProvider(&cfg.Upstream, rules, logger)
	if err != nil {
		return nil, err
	}
	if !provider.Configured() {
		logger.Warn("upstream credential not configured, check jobs will be rejected",
			slog.String("provider", provider.Name()))
	}

	var retryOpts []retry.Option
	if obs.Retry != nil {
		retryOpts = append(retryOpts, retry.WithObserver(obs.Retry))
	}
	controller := retry.New(provider, retry.Config{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
		BaseDelay:   cfg.Pipeline.BackoffBase,
		MaxDelay:    cfg.Pipeline.BackoffCap,
	}, logger, retryOpts...)

	var schedOpts []scheduler.Option
	if obs.Outcomes != nil {
		schedOpts = append(schedOpts, scheduler.WithObserver(obs.Outcomes))
	}
	sched := scheduler.New(controller, scheduler.Config{
		BatchSize: cfg.Pipeline.BatchSize,
		MinRPS:    cfg.Pipeline.MinRPS,
		MaxRPS:    cfg.Pipeline.MaxRPS,
	}, logger, schedOpts...)

	ids, err := jobid.New(uint64(time.Now().Unix()))
	if err != nil {
		return nil, fmt.Errorf("failed to create job id generator: %w", err)
	}

	business := obs.Business
	if business == nil {
		business = nopBusiness{}
	}
	jobs := obs.Jobs
	if jobs == nil {
		jobs = nopJobs{}
	}

	gen := candidate.NewGenerator(cfg.Pipeline.MaxDomains)
	svc := service.NewCheckService(gen, sched, provider, ids, business, jobs, service.Config{
		DefaultRPS:   cfg.Pipeline.DefaultRPS,
		PreviewLimit: cfg.Pipeline.PreviewLimit,
	}, logger)

	p := &Pipeline{
		Provider:  provider,
		Generator: gen,
		Scheduler: sched,
		Service:   svc,
	}
	if c, ok := provider.(interface{ Close() error }); ok {
		p.closers = append(p.closers, c.Close)
	}
	return p, nil
}

func (p *Pipeline) Close() error {
	var first error
	for _, c := range p.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type nopBusiness struct{}

func (nopBusiness) RecordBusiness(string, float64, map[string]string) {}

type nopJobs struct{}

func (nopJobs) JobStarted()  {}
func (nopJobs) JobFinished() {}
