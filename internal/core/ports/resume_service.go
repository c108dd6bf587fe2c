package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// CreateResumeInput carries the fields for a manually entered resume.
type CreateResumeInput struct {
	UserID  string
	Title   string
	Content string
}

// UploadResumeInput carries an uploaded resume document. ContentType may be
// empty or generic; the service falls back to the filename extension.
type UploadResumeInput struct {
	UserID      string
	Title       string
	Filename    string
	ContentType string
	Data        []byte
}

type ResumeService interface {
	Create(ctx context.Context, input CreateResumeInput) (*domain.Resume, error)
	Upload(ctx context.Context, input UploadResumeInput) (*domain.Resume, error)
	Get(ctx context.Context, id, userID string) (*domain.Resume, error)
	List(ctx context.Context, userID string) ([]*domain.Resume, error)
	Delete(ctx context.Context, id, userID string) error
}
