package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// AnalysisProvider is the upstream LLM boundary. Each call is a stateless
// single turn; failures must wrap domain.ErrAnalysisFailed.
type AnalysisProvider interface {
	Analyze(ctx context.Context, resumeText string) (*domain.ATSAnalysis, error)
	MatchJob(ctx context.Context, resumeText, jobText string) (*domain.JobMatch, error)
	Rewrite(ctx context.Context, resumeText, tone string) (string, error)
}

// UsageQuota meters AI calls per user. Allow reports whether this call fits
// within the user's daily budget, consuming one unit when it does.
type UsageQuota interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

// AnalysisService fronts the provider with quota enforcement and metrics.
type AnalysisService interface {
	Analyze(ctx context.Context, userID, resumeText string) (*domain.ATSAnalysis, error)
	MatchJob(ctx context.Context, userID, resumeText, jobText string) (*domain.JobMatch, error)
	Rewrite(ctx context.Context, userID, resumeText, tone string) (string, error)
}
