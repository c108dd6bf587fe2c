package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerforge/resume-platform/internal/api/metrics"
	"github.com/careerforge/resume-platform/internal/core/domain"
	"github.com/careerforge/resume-platform/internal/core/ports"
)

const defaultTone = "professional"

// AnalysisService fronts the LLM provider with per-user quota enforcement.
// Calls are stateless and never retried; upstream failures surface to the
// client with the underlying message.
type AnalysisService struct {
	provider ports.AnalysisProvider
	quota    ports.UsageQuota
	logger   zerolog.Logger
}

func NewAnalysisService(provider ports.AnalysisProvider, quota ports.UsageQuota, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{provider: provider, quota: quota, logger: logger}
}

func (s *AnalysisService) Analyze(ctx context.Context, userID, resumeText string) (*domain.ATSAnalysis, error) {
	if err := s.allow(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.provider.Analyze(ctx, resumeText)
	s.observe("analyze", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("ATS analysis failed")
		return nil, err
	}
	return result, nil
}

func (s *AnalysisService) MatchJob(ctx context.Context, userID, resumeText, jobText string) (*domain.JobMatch, error) {
	if err := s.allow(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.provider.MatchJob(ctx, resumeText, jobText)
	s.observe("match", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("job match failed")
		return nil, err
	}
	return result, nil
}

func (s *AnalysisService) Rewrite(ctx context.Context, userID, resumeText, tone string) (string, error) {
	if err := s.allow(ctx, userID); err != nil {
		return "", err
	}
	if tone == "" {
		tone = defaultTone
	}

	start := time.Now()
	text, err := s.provider.Rewrite(ctx, resumeText, tone)
	s.observe("rewrite", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("resume rewrite failed")
		return "", err
	}
	return text, nil
}

func (s *AnalysisService) allow(ctx context.Context, userID string) error {
	ok, err := s.quota.Allow(ctx, userID)
	if err != nil {
		// Quota storage being down should not take the feature down with it.
		s.logger.Warn().Err(err).Msg("quota check failed, allowing request")
		return nil
	}
	if !ok {
		metrics.AIQuotaRejectionsTotal.Inc()
		return domain.ErrQuotaExceeded
	}
	return nil
}

func (s *AnalysisService) observe(operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.AIRequestsTotal.WithLabelValues(operation, result).Inc()
	metrics.AIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
