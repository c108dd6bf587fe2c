package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// ResumeRepository defines persistence for resumes. Every lookup is scoped
// by owner: a resume belonging to another user behaves as missing.
type ResumeRepository interface {
	Create(ctx context.Context, resume *domain.Resume) error
	FindByID(ctx context.Context, id, userID string) (*domain.Resume, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.Resume, error)
	// Delete removes the owned resume and reports how many documents matched.
	Delete(ctx context.Context, id, userID string) (int64, error)
}
