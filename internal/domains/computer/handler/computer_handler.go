package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/computer/model"
	"catalog-backend/internal/domains/computer/service"
	"catalog-backend/internal/shared/etag"
	"catalog-backend/internal/shared/response"
)

// Handler - HTTP handler for the computer domain
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/computers
func (h *Handler) Create(c *gin.Context) {
	var req model.ComputerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request body: "+err.Error())
		return
	}

	computer := req.ToEntity()
	id, err := h.service.Create(c.Request.Context(), &computer)
	if err != nil {
		response.WriteFault(c, err)
		return
	}

	location := fmt.Sprintf("%s/%s", c.Request.URL.Path, id)
	c.Header("Location", location)
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// GetByID - GET /api/v1/computers/:id
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	computer, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}
	if computer == nil {
		response.NotFound(c, fmt.Sprintf("there is no computer with id %q", id))
		return
	}

	version := etag.Format(computer.Version)
	if c.GetHeader("If-None-Match") == version {
		c.Status(http.StatusNotModified)
		return
	}

	c.Header("ETag", version)
	response.Success(c, http.StatusOK, computer)
}

// List - GET /api/v1/computers
// Supported query params: manufacturer (substring), serial (exact).
func (h *Handler) List(c *gin.Context) {
	var filter model.ComputerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "malformed query: "+err.Error())
		return
	}

	computers, err := h.service.Find(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}
	if len(computers) == 0 {
		response.NotFound(c, "no computers match the given criteria")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, computers, &response.Meta{Total: len(computers)})
}

// Update - PUT /api/v1/computers/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	version := c.GetHeader("If-Match")

	var req model.ComputerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request body: "+err.Error())
		return
	}

	computer := req.ToEntity()
	newVersion, err := h.service.Update(c.Request.Context(), id, &computer, version)
	if err != nil {
		response.WriteFault(c, err)
		return
	}

	c.Header("ETag", etag.Format(newVersion))
	c.Status(http.StatusNoContent)
}

// Delete - DELETE /api/v1/computers/:id
// Idempotent: unknown and malformed ids also yield 204.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}
