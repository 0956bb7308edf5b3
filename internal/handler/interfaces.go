package handler

//go:generate go tool mockery

import (
	"context"

	"domainscout/internal/domain"
	"domainscout/internal/prefs"
	"domainscout/internal/scheduler"
)

type CheckService interface {
	Preview(req domain.CheckRequest) domain.PreviewResponse
	PrepareJob(req domain.CheckRequest) (*domain.Job, error)
	Run(ctx context.Context, job *domain.Job, sink scheduler.Sink) error
}

type RequestValidator interface {
	ValidateCheckRequest(req domain.CheckRequest) error
	ValidateTLDs(tlds []string) error
}

type PrefsStore interface {
	Get(client string) (prefs.Preferences, error)
	AddFavorite(client, suffix string) (prefs.Preferences, error)
	RemoveFavorite(client, suffix string) (prefs.Preferences, error)
	TouchRecent(client string, suffixes []string) (prefs.Preferences, error)
	ClearRecents(client string) (prefs.Preferences, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
