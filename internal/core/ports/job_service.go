package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

type JobService interface {
	List(ctx context.Context, category string, limit int) ([]*domain.JobListing, error)
	Get(ctx context.Context, id string) (*domain.JobListing, error)
	// Seed inserts the sample catalog when the collection is empty.
	Seed(ctx context.Context) error
}
