package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications. Create
// must translate a duplicate (user, job) write into domain.ErrAlreadyApplied.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.Application, error)
}
