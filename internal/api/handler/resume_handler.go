package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/ports"
)

// maxUploadBytes caps resume document uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// ResumeHandler handles owner-scoped resume CRUD and document upload.
type ResumeHandler struct {
	service ports.ResumeService
}

func NewResumeHandler(service ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Create handles POST /resumes.
//
// @Summary      Create a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createResumeRequest  true  "Resume details"
// @Success      200   {object}  domain.Resume
// @Failure      400   {object}  map[string]string
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createResumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resume, err := h.service.Create(c.Request().Context(), ports.CreateResumeInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

// Upload handles POST /resumes/upload (multipart: title + file).
//
// @Summary      Upload a resume document
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title  formData  string  true  "Resume title"
// @Param        file   formData  file    true  "PDF, DOCX or plain-text document"
// @Success      200    {object}  domain.Resume
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /resumes/upload [post]
func (h *ResumeHandler) Upload(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	resume, err := h.service.Upload(c.Request().Context(), ports.UploadResumeInput{
		UserID:      userID,
		Title:       title,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

// List handles GET /resumes.
//
// @Summary      List own resumes
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Resume
// @Router       /resumes [get]
func (h *ResumeHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	resumes, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resumes)
}

// Get handles GET /resumes/:id.
//
// @Summary      Get an owned resume
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resume id"
// @Success      200  {object}  domain.Resume
// @Failure      404  {object}  map[string]string
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	resume, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

// Delete handles DELETE /resumes/:id.
//
// @Summary      Delete an owned resume
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resume id"
// @Success      200  {object}  deleteResumeResponse
// @Failure      404  {object}  map[string]string
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResumeResponse{Message: "Resume deleted successfully"})
}
