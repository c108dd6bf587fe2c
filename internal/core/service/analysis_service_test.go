package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

type stubProvider struct {
	analysis *domain.ATSAnalysis
	match    *domain.JobMatch
	rewrite  string
	err      error

	lastTone string
	calls    int
}

func (p *stubProvider) Analyze(_ context.Context, _ string) (*domain.ATSAnalysis, error) {
	p.calls++
	return p.analysis, p.err
}

func (p *stubProvider) MatchJob(_ context.Context, _, _ string) (*domain.JobMatch, error) {
	p.calls++
	return p.match, p.err
}

func (p *stubProvider) Rewrite(_ context.Context, _, tone string) (string, error) {
	p.calls++
	p.lastTone = tone
	return p.rewrite, p.err
}

type stubQuota struct {
	allowed bool
	err     error
}

func (q *stubQuota) Allow(_ context.Context, _ string) (bool, error) {
	return q.allowed, q.err
}

func TestAnalysisService_Analyze_Success(t *testing.T) {
	provider := &stubProvider{analysis: &domain.ATSAnalysis{Score: 82, Strengths: []string{"clear layout"}}}
	svc := NewAnalysisService(provider, &stubQuota{allowed: true}, zerolog.Nop())

	result, err := svc.Analyze(context.Background(), "user-1", "resume text")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Score != 82 {
		t.Fatalf("unexpected score: %v", result.Score)
	}
}

func TestAnalysisService_QuotaExceeded(t *testing.T) {
	provider := &stubProvider{}
	svc := NewAnalysisService(provider, &stubQuota{allowed: false}, zerolog.Nop())

	if _, err := svc.Analyze(context.Background(), "user-1", "text"); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if _, err := svc.MatchJob(context.Background(), "user-1", "text", "job"); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if _, err := svc.Rewrite(context.Background(), "user-1", "text", ""); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be called when quota is exhausted")
	}
}

func TestAnalysisService_QuotaFailureFailsOpen(t *testing.T) {
	provider := &stubProvider{rewrite: "rewritten"}
	svc := NewAnalysisService(provider, &stubQuota{err: errors.New("redis down")}, zerolog.Nop())

	text, err := svc.Rewrite(context.Background(), "user-1", "resume", "casual")
	if err != nil {
		t.Fatalf("expected quota failure to fail open, got %v", err)
	}
	if text != "rewritten" {
		t.Fatalf("unexpected rewrite result: %q", text)
	}
}

func TestAnalysisService_ProviderErrorPassthrough(t *testing.T) {
	wrapped := fmt.Errorf("%w: model overloaded", domain.ErrAnalysisFailed)
	provider := &stubProvider{err: wrapped}
	svc := NewAnalysisService(provider, &stubQuota{allowed: true}, zerolog.Nop())

	_, err := svc.MatchJob(context.Background(), "user-1", "resume", "job")
	if !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Fatalf("expected wrapped ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalysisService_Rewrite_DefaultTone(t *testing.T) {
	provider := &stubProvider{rewrite: "ok"}
	svc := NewAnalysisService(provider, &stubQuota{allowed: true}, zerolog.Nop())

	if _, err := svc.Rewrite(context.Background(), "user-1", "resume", ""); err != nil {
		t.Fatalf("Rewrite returned error: %v", err)
	}
	if provider.lastTone != "professional" {
		t.Fatalf("expected default tone professional, got %q", provider.lastTone)
	}

	if _, err := svc.Rewrite(context.Background(), "user-1", "resume", "concise"); err != nil {
		t.Fatalf("Rewrite returned error: %v", err)
	}
	if provider.lastTone != "concise" {
		t.Fatalf("expected explicit tone to be forwarded, got %q", provider.lastTone)
	}
}
