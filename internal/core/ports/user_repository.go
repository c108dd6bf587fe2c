package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// UserRepository defines persistence for account records. Create must
// translate a duplicate-email write into domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
