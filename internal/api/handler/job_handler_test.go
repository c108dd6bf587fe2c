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

type stubJobService struct {
	listFn func(ctx context.Context, category string, limit int) ([]*domain.JobListing, error)
	getFn  func(ctx context.Context, id string) (*domain.JobListing, error)
}

func (s *stubJobService) List(ctx context.Context, category string, limit int) ([]*domain.JobListing, error) {
	return s.listFn(ctx, category, limit)
}

func (s *stubJobService) Get(ctx context.Context, id string) (*domain.JobListing, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobService) Seed(context.Context) error { return nil }

func TestJobHandler_List(t *testing.T) {
	stub := &stubJobService{
		listFn: func(_ context.Context, category string, limit int) ([]*domain.JobListing, error) {
			if category != "internship" || limit != 10 {
				t.Fatalf("unexpected args: %s %d", category, limit)
			}
			return []*domain.JobListing{{ID: "job-1", Title: "Data Science Intern"}}, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/jobs?category=internship&limit=10", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var jobs []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(jobs) != 1 || jobs[0]["id"] != "job-1" {
		t.Fatalf("unexpected payload: %+v", jobs)
	}
}

func TestJobHandler_List_InvalidLimit(t *testing.T) {
	stub := &stubJobService{
		listFn: func(context.Context, string, int) ([]*domain.JobListing, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/jobs?limit=abc", "")
	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	stub := &stubJobService{
		getFn: func(_ context.Context, id string) (*domain.JobListing, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	h := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/jobs/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
