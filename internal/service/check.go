package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"domainscout/internal/candidate"
	"domainscout/internal/domain"
	"domainscout/internal/scheduler"
	"domainscout/internal/upstream"
)

type Config struct {
	DefaultRPS   float64
	PreviewLimit int
}

// CheckService turns requests into jobs and runs them.
type CheckService struct {
	gen      Generator
	runner   Runner
	upstream Upstream
	ids      IDGenerator
	recorder BusinessRecorder
	jobs     JobObserver
	cfg      Config
	logger   *slog.Logger
	active   atomic.Int64
}

func NewCheckService(
	gen Generator,
	runner Runner,
	up Upstream,
	ids IDGenerator,
	recorder BusinessRecorder,
	jobs JobObserver,
	cfg Config,
	logger *slog.Logger,
) *CheckService {
	if cfg.DefaultRPS <= 0 {
		cfg.DefaultRPS = 1
	}
	return &CheckService{
		gen:      gen,
		runner:   runner,
		upstream: up,
		ids:      ids,
		recorder: recorder,
		jobs:     jobs,
		cfg:      cfg,
		logger:   logger,
	}
}

// Preview sizes a request without checking anything. It never fails: an
// oversized request is reported through TooLarge.
func (s *CheckService) Preview(req domain.CheckRequest) domain.PreviewResponse {
	resp := domain.PreviewResponse{Max: s.gen.Max(), Candidates: []string{}}

	if !req.UsesKeywords() {
		list, err := s.gen.Normalize(req.Domains)
		var limitErr *candidate.LimitError
		switch {
		case errors.As(err, &limitErr):
			resp.Count = limitErr.Count
			resp.TooLarge = true
		case err == nil:
			resp.Count = len(list)
			resp.Candidates = head(list, s.cfg.PreviewLimit)
		}
		return resp
	}

	count, candidates := s.gen.Preview(req.Keywords1, req.Keywords2, req.TLDs, s.cfg.PreviewLimit)
	resp.Count = count
	resp.TooLarge = count > resp.Max
	if candidates != nil {
		resp.Candidates = candidates
	}
	return resp
}

// PrepareJob builds the job for a validated request. Nothing is sent
// upstream until Run.
func (s *CheckService) PrepareJob(req domain.CheckRequest) (*domain.Job, error) {
	if !s.upstream.Configured() {
		return nil, upstream.ErrMissingCredential
	}

	var (
		candidates []string
		err        error
	)
	if req.UsesKeywords() {
		candidates, err = s.gen.Generate(req.Keywords1, req.Keywords2, req.TLDs)
	} else {
		candidates, err = s.gen.Normalize(req.Domains)
	}
	if err != nil {
		return nil, err
	}

	id, err := s.ids.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to generate job id: %w", err)
	}

	rps := req.RPS
	if rps <= 0 {
		rps = s.cfg.DefaultRPS
	}

	return &domain.Job{
		ID:         id,
		Candidates: candidates,
		RPS:        s.runner.ClampRate(rps),
		StartedAt:  time.Now(),
	}, nil
}

func (s *CheckService) Run(ctx context.Context, job *domain.Job, sink scheduler.Sink) error {
	s.active.Add(1)
	s.jobs.JobStarted()
	defer func() {
		s.active.Add(-1)
		s.jobs.JobFinished()
	}()

	labels := map[string]string{
		"provider": s.upstream.Name(),
		"job_id":   job.ID,
	}
	s.recorder.RecordBusiness("job_started", float64(len(job.Candidates)), labels)

	err := s.runner.Run(ctx, job, sink)

	elapsed := time.Since(job.StartedAt)
	final := map[string]string{
		"provider":  s.upstream.Name(),
		"job_id":    job.ID,
		"cancelled": strconv.FormatBool(job.Cancelled),
	}
	s.recorder.RecordBusiness("job_domains_checked", float64(job.Processed), final)
	s.recorder.RecordBusiness("job_domains_available", float64(job.Available), final)
	s.recorder.RecordBusiness("job_duration_seconds", elapsed.Seconds(), final)

	if err != nil {
		s.logger.Error("job failed",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("job %s: %w", job.ID, err)
	}
	return nil
}

// ActiveJobs is the number of jobs currently running.
func (s *CheckService) ActiveJobs() int {
	return int(s.active.Load())
}

func head(list []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
