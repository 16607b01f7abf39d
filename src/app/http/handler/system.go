package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetregistry/src/app/http/response"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/usecase"
)

// SystemHandler handles IoT system endpoints.
type SystemHandler struct {
	systemService *usecase.SystemService
}

func NewSystemHandler(systemService *usecase.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

func (h *SystemHandler) Create(c *gin.Context) {
	var req dto.SystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.systemService.Create(c.Request.Context(), &req), http.StatusCreated)
}

func (h *SystemHandler) Update(c *gin.Context) {
	var req dto.SystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.systemService.Update(c.Request.Context(), &req, c.Param("id")), http.StatusOK)
}

func (h *SystemHandler) GetByID(c *gin.Context) {
	response.Render(c, h.systemService.RetrieveByID(c.Request.Context(), c.Param("id")), http.StatusOK)
}

func (h *SystemHandler) GetByName(c *gin.Context) {
	response.Render(c, h.systemService.RetrieveByName(c.Request.Context(), c.Param("name")), http.StatusOK)
}

func (h *SystemHandler) List(c *gin.Context) {
	page, size, ok := parsePagination(c)
	if !ok {
		return
	}
	response.RenderCollection(c, h.systemService.RetrieveAll(c.Request.Context(), page, size), http.StatusOK)
}

func (h *SystemHandler) Delete(c *gin.Context) {
	response.Render(c, h.systemService.Delete(c.Request.Context(), c.Param("id")), http.StatusNoContent)
}

func (h *SystemHandler) DeleteAll(c *gin.Context) {
	response.Render(c, h.systemService.DeleteAll(c.Request.Context()), http.StatusNoContent)
}
