package handler

import (
	"net/http"

	"festfusion/internal/services"
	"festfusion/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	diagnostics *services.DiagnosticsService
}

func NewAdminHandler(diagnostics *services.DiagnosticsService) *AdminHandler {
	return &AdminHandler{diagnostics: diagnostics}
}

// Status reports credential and worksheet configuration without side effects.
func (h *AdminHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(h.diagnostics.Status()))
}

// CheckSheet appends a marked diagnostics row to the worksheet and removes
// it, proving write and delete access for the service identity.
func (h *AdminHandler) CheckSheet(c *gin.Context) {
	report := h.diagnostics.CheckTabular(c.Request.Context())
	if !report.TabularOK {
		c.JSON(http.StatusBadGateway, httpdto.NewErrorResponse(report.TabularErr, "TABULAR_CHECK_FAILED"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(report))
}
