package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/ports"
)

// JobHandler serves the public, read-only job catalog.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /jobs?category=&limit=.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        category  query    string  false  "Filter by category (internship|job)"
// @Param        limit     query    int     false  "Maximum records (default 50)"
// @Success      200       {array}  domain.JobListing
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	jobs, err := h.service.List(c.Request().Context(), c.QueryParam("category"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.JobListing
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
