package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestTemplateHandler_List(t *testing.T) {
	h := NewTemplateHandler()

	c, rec := newTestContext(t, http.MethodGet, "/templates", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var templates []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &templates); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(templates) != 8 {
		t.Fatalf("expected 8 templates, got %d", len(templates))
	}
	if templates[0]["name"] != "Modern Professional" {
		t.Fatalf("unexpected first template: %+v", templates[0])
	}
}
