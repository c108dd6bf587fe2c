package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

type stubAnalysisService struct {
	analyzeFn func(ctx context.Context, userID, resumeText string) (*domain.ATSAnalysis, error)
	matchFn   func(ctx context.Context, userID, resumeText, jobText string) (*domain.JobMatch, error)
	rewriteFn func(ctx context.Context, userID, resumeText, tone string) (string, error)
}

func (s *stubAnalysisService) Analyze(ctx context.Context, userID, resumeText string) (*domain.ATSAnalysis, error) {
	return s.analyzeFn(ctx, userID, resumeText)
}

func (s *stubAnalysisService) MatchJob(ctx context.Context, userID, resumeText, jobText string) (*domain.JobMatch, error) {
	return s.matchFn(ctx, userID, resumeText, jobText)
}

func (s *stubAnalysisService) Rewrite(ctx context.Context, userID, resumeText, tone string) (string, error) {
	return s.rewriteFn(ctx, userID, resumeText, tone)
}

func TestAnalysisHandler_Analyze_Success(t *testing.T) {
	stub := &stubAnalysisService{
		analyzeFn: func(_ context.Context, userID, resumeText string) (*domain.ATSAnalysis, error) {
			if userID != "user-1" || resumeText != "my resume" {
				t.Fatalf("unexpected args: %s %s", userID, resumeText)
			}
			return &domain.ATSAnalysis{Score: 75, Strengths: []string{"concise"}}, nil
		},
	}
	h := NewAnalysisHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/resumes/analyze",
		`{"resume_content":"my resume"}`)
	c.Set("user_id", "user-1")

	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["score"] != float64(75) {
		t.Fatalf("unexpected score: %v", resp["score"])
	}
}

func TestAnalysisHandler_Analyze_QuotaExceeded(t *testing.T) {
	stub := &stubAnalysisService{
		analyzeFn: func(context.Context, string, string) (*domain.ATSAnalysis, error) {
			return nil, domain.ErrQuotaExceeded
		},
	}
	h := NewAnalysisHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/resumes/analyze",
		`{"resume_content":"my resume"}`)
	c.Set("user_id", "user-1")

	if err := h.Analyze(c); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestAnalysisHandler_MatchJob_MissingJobDescription(t *testing.T) {
	stub := &stubAnalysisService{
		matchFn: func(context.Context, string, string, string) (*domain.JobMatch, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAnalysisHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/resumes/match-job",
		`{"resume_content":"my resume"}`)
	c.Set("user_id", "user-1")

	err := h.MatchJob(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAnalysisHandler_Rewrite_Success(t *testing.T) {
	stub := &stubAnalysisService{
		rewriteFn: func(_ context.Context, _, _, tone string) (string, error) {
			if tone != "casual" {
				t.Fatalf("unexpected tone: %s", tone)
			}
			return "rewritten content", nil
		},
	}
	h := NewAnalysisHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/resumes/rewrite",
		`{"resume_content":"my resume","tone":"casual"}`)
	c.Set("user_id", "user-1")

	if err := h.Rewrite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["rewritten_content"] != "rewritten content" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAnalysisHandler_Rewrite_FreeFormTone(t *testing.T) {
	stub := &stubAnalysisService{
		rewriteFn: func(_ context.Context, _, _, tone string) (string, error) {
			if tone != "enthusiastic but humble" {
				t.Fatalf("tone not forwarded verbatim: %q", tone)
			}
			return "ok", nil
		},
	}
	h := NewAnalysisHandler(stub)

	// Any tone string is accepted and reaches the service untouched.
	c, rec := newTestContext(t, http.MethodPost, "/resumes/rewrite",
		`{"resume_content":"my resume","tone":"enthusiastic but humble"}`)
	c.Set("user_id", "user-1")

	if err := h.Rewrite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAnalysisHandler_UpstreamFailurePassthrough(t *testing.T) {
	stub := &stubAnalysisService{
		analyzeFn: func(context.Context, string, string) (*domain.ATSAnalysis, error) {
			return nil, domain.ErrAnalysisFailed
		},
	}
	h := NewAnalysisHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/resumes/analyze",
		`{"resume_content":"my resume"}`)
	c.Set("user_id", "user-1")

	if err := h.Analyze(c); !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}
