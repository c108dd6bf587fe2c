package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-platform/internal/api/metrics"
	"github.com/careerforge/resume-platform/internal/core/domain"
	"github.com/careerforge/resume-platform/internal/core/ports"
	"github.com/careerforge/resume-platform/internal/pkg/extract"
)

const listResumesLimit = 100

// ResumeService implements owner-scoped resume CRUD plus document upload.
type ResumeService struct {
	repo   ports.ResumeRepository
	store  ports.ObjectStore
	logger zerolog.Logger
}

func NewResumeService(repo ports.ResumeRepository, store ports.ObjectStore, logger zerolog.Logger) *ResumeService {
	return &ResumeService{repo: repo, store: store, logger: logger}
}

func (s *ResumeService) Create(ctx context.Context, input ports.CreateResumeInput) (*domain.Resume, error) {
	now := time.Now().UTC()
	resume := &domain.Resume{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, resume); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create resume")
		return nil, err
	}

	metrics.ResumesCreatedTotal.WithLabelValues("manual").Inc()
	return resume, nil
}

// Upload stores the raw document in object storage, extracts its text and
// creates a resume whose content is the extracted text.
func (s *ResumeService) Upload(ctx context.Context, input ports.UploadResumeInput) (*domain.Resume, error) {
	contentType := extract.DetectType(input.Filename, input.ContentType)

	text, err := extract.Text(contentType, input.Data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, contentType)
		}
		return nil, fmt.Errorf("extract resume text: %w", err)
	}

	key := fmt.Sprintf("resumes/%s/%s%s", input.UserID, uuid.NewString(), path.Ext(input.Filename))
	if err := s.store.Put(ctx, key, contentType, input.Data); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to store resume file")
		return nil, fmt.Errorf("store resume file: %w", err)
	}

	now := time.Now().UTC()
	resume := &domain.Resume{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   text,
		FilePath:  key,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, resume); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create uploaded resume")
		return nil, err
	}

	s.logger.Info().Str("resume_id", resume.ID).Str("file_path", key).Msg("resume uploaded")
	metrics.ResumesCreatedTotal.WithLabelValues("upload").Inc()
	return resume, nil
}

func (s *ResumeService) Get(ctx context.Context, id, userID string) (*domain.Resume, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *ResumeService) List(ctx context.Context, userID string) ([]*domain.Resume, error) {
	return s.repo.ListByUser(ctx, userID, listResumesLimit)
}

func (s *ResumeService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrResumeNotFound
	}
	return nil
}
