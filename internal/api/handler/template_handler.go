package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// TemplateHandler serves the static resume template catalog.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// List handles GET /templates.
//
// @Summary      List resume templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  domain.Template
// @Router       /templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.TemplateCatalog())
}
