package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetregistry/src/app/http/response"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/usecase"
)

// AssetCategoryHandler handles asset category endpoints.
type AssetCategoryHandler struct {
	categoryService *usecase.AssetCategoryService
}

func NewAssetCategoryHandler(categoryService *usecase.AssetCategoryService) *AssetCategoryHandler {
	return &AssetCategoryHandler{categoryService: categoryService}
}

func (h *AssetCategoryHandler) Create(c *gin.Context) {
	var req dto.AssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.categoryService.Create(c.Request.Context(), &req), http.StatusCreated)
}

func (h *AssetCategoryHandler) Update(c *gin.Context) {
	var req dto.AssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.categoryService.Update(c.Request.Context(), &req, c.Param("id")), http.StatusOK)
}

func (h *AssetCategoryHandler) GetByID(c *gin.Context) {
	response.Render(c, h.categoryService.RetrieveByID(c.Request.Context(), c.Param("id")), http.StatusOK)
}

func (h *AssetCategoryHandler) GetByName(c *gin.Context) {
	response.Render(c, h.categoryService.RetrieveByName(c.Request.Context(), c.Param("name")), http.StatusOK)
}

func (h *AssetCategoryHandler) List(c *gin.Context) {
	page, size, ok := parsePagination(c)
	if !ok {
		return
	}
	response.RenderCollection(c, h.categoryService.RetrieveAll(c.Request.Context(), page, size), http.StatusOK)
}

func (h *AssetCategoryHandler) Delete(c *gin.Context) {
	response.Render(c, h.categoryService.Delete(c.Request.Context(), c.Param("id")), http.StatusNoContent)
}

func (h *AssetCategoryHandler) DeleteAll(c *gin.Context) {
	response.Render(c, h.categoryService.DeleteAll(c.Request.Context()), http.StatusNoContent)
}
