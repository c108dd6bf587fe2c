package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// JobRepository defines read access plus the startup seed path for listings.
type JobRepository interface {
	// List returns up to limit listings; category narrows the result when
	// non-empty.
	List(ctx context.Context, category string, limit int64) ([]*domain.JobListing, error)
	FindByID(ctx context.Context, id string) (*domain.JobListing, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, jobs []*domain.JobListing) error
}
