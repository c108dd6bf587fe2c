package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/ports"
)

// AnalysisHandler fronts the three AI endpoints.
type AnalysisHandler struct {
	service ports.AnalysisService
}

func NewAnalysisHandler(service ports.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze handles POST /resumes/analyze.
//
// @Summary      ATS compatibility analysis
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzeRequest  true  "Resume text"
// @Success      200   {object}  domain.ATSAnalysis
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /resumes/analyze [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Analyze(c.Request().Context(), userID, req.ResumeContent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// MatchJob handles POST /resumes/match-job.
//
// @Summary      Match a resume against a job description
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      matchJobRequest  true  "Resume and job text"
// @Success      200   {object}  domain.JobMatch
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /resumes/match-job [post]
func (h *AnalysisHandler) MatchJob(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req matchJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.MatchJob(c.Request().Context(), userID, req.ResumeContent, req.JobDescription)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Rewrite handles POST /resumes/rewrite.
//
// @Summary      Rewrite a resume with a given tone
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rewriteRequest  true  "Resume text and tone"
// @Success      200   {object}  rewriteResponse
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /resumes/rewrite [post]
func (h *AnalysisHandler) Rewrite(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req rewriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	text, err := h.service.Rewrite(c.Request().Context(), userID, req.ResumeContent, req.Tone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rewriteResponse{RewrittenContent: text})
}
