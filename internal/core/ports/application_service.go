package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// ApplyInput carries the fields needed to apply to a job.
type ApplyInput struct {
	UserID      string
	JobID       string
	ResumeID    string
	CoverLetter string
}

type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	List(ctx context.Context, userID string) ([]*domain.Application, error)
}
