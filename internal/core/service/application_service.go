package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-platform/internal/api/metrics"
	"github.com/careerforge/resume-platform/internal/core/domain"
	"github.com/careerforge/resume-platform/internal/core/ports"
)

const listApplicationsLimit = 100

// ApplicationService implements applying to jobs and listing own applications.
type ApplicationService struct {
	repo    ports.ApplicationRepository
	jobs    ports.JobRepository
	resumes ports.ResumeRepository
	logger  zerolog.Logger
}

func NewApplicationService(
	repo ports.ApplicationRepository,
	jobs ports.JobRepository,
	resumes ports.ResumeRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, resumes: resumes, logger: logger}
}

// Apply creates an application after checking the referenced job exists and
// the resume belongs to the caller. One application per (user, job) pair is
// enforced by the unique index; the repository reports a duplicate as
// domain.ErrAlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	if _, err := s.jobs.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}
	if _, err := s.resumes.FindByID(ctx, input.ResumeID, input.UserID); err != nil {
		return nil, err
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		JobID:       input.JobID,
		ResumeID:    input.ResumeID,
		CoverLetter: input.CoverLetter,
		Status:      domain.StatusApplied,
		AppliedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.UserID).Str("job_id", input.JobID).Msg("application created")
	metrics.ApplicationsCreatedTotal.Inc()
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]*domain.Application, error) {
	return s.repo.ListByUser(ctx, userID, listApplicationsLimit)
}
