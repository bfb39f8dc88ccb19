package handler

import (
	"net/http"

	"festfusion/internal/districts"
	"festfusion/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type DistrictHandler struct{}

func NewDistrictHandler() *DistrictHandler {
	return &DistrictHandler{}
}

func (h *DistrictHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"districts": districts.Sorted()}))
}
