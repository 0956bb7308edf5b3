package service

//go:generate go tool mockery

import (
	"context"

	"domainscout/internal/domain"
	"domainscout/internal/scheduler"
)

type Generator interface {
	Max() int
	Generate(keywords1, keywords2 string, tlds []string) ([]string, error)
	Preview(keywords1, keywords2 string, tlds []string, limit int) (int, []string)
	Normalize(domains []string) ([]string, error)
}

type Runner interface {
	ClampRate(rps float64) float64
	Run(ctx context.Context, job *domain.Job, sink scheduler.Sink) error
}

type Upstream interface {
	Name() string
	Configured() bool
}

type IDGenerator interface {
	Next() (string, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

type JobObserver interface {
	JobStarted()
	JobFinished()
}
