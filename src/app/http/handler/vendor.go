// Package handler contains the gin controllers. Each controller translates
// routes and parameters into service calls and renders the returned wrapper.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assetregistry/src/app/http/response"
	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/usecase"
)

// VendorHandler handles vendor endpoints.
type VendorHandler struct {
	vendorService *usecase.VendorService
}

func NewVendorHandler(vendorService *usecase.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req dto.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.vendorService.Create(c.Request.Context(), &req), http.StatusCreated)
}

func (h *VendorHandler) Update(c *gin.Context) {
	var req dto.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidParameters(c, "malformed request body")
		return
	}
	response.Render(c, h.vendorService.Update(c.Request.Context(), &req, c.Param("id")), http.StatusOK)
}

func (h *VendorHandler) GetByID(c *gin.Context) {
	response.Render(c, h.vendorService.RetrieveByID(c.Request.Context(), c.Param("id")), http.StatusOK)
}

func (h *VendorHandler) GetByName(c *gin.Context) {
	response.Render(c, h.vendorService.RetrieveByName(c.Request.Context(), c.Param("name")), http.StatusOK)
}

func (h *VendorHandler) List(c *gin.Context) {
	page, size, ok := parsePagination(c)
	if !ok {
		return
	}
	response.RenderCollection(c, h.vendorService.RetrieveAll(c.Request.Context(), page, size), http.StatusOK)
}

func (h *VendorHandler) Delete(c *gin.Context) {
	response.Render(c, h.vendorService.Delete(c.Request.Context(), c.Param("id")), http.StatusNoContent)
}

func (h *VendorHandler) DeleteAll(c *gin.Context) {
	response.Render(c, h.vendorService.DeleteAll(c.Request.Context()), http.StatusNoContent)
}

// parsePagination reads the page and size query parameters, applying the
// documented defaults. A non-numeric value is rejected at this boundary.
func parsePagination(c *gin.Context) (page, size int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(domain.DefaultPage)))
	if err != nil {
		response.InvalidParameters(c, "page must be an integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil {
		response.InvalidParameters(c, "size must be an integer")
		return 0, 0, false
	}
	return page, size, true
}
