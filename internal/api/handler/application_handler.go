package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/ports"
)

// ApplicationHandler handles applying to jobs and listing own applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type createApplicationRequest struct {
	JobID       string `json:"job_id"       validate:"required"`
	ResumeID    string `json:"resume_id"    validate:"required"`
	CoverLetter string `json:"cover_letter"`
}

// Create handles POST /applications.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		UserID:      userID,
		JobID:       req.JobID,
		ResumeID:    req.ResumeID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// List handles GET /applications.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Application
// @Router       /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}
