package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared/etag"
	"catalog-backend/internal/shared/response"
)

// Handler - HTTP handler for the book domain
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/books
func (h *Handler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request body: "+err.Error())
		return
	}

	book := req.ToEntity()
	id, err := h.service.Create(c.Request.Context(), &book)
	if err != nil {
		response.WriteFault(c, err)
		return
	}

	location := fmt.Sprintf("%s/%s", c.Request.URL.Path, id)
	c.Header("Location", location)
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// GetByID - GET /api/v1/books/:id
// Honors If-None-Match: a matching version token yields 304 with no body.
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	book, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}
	if book == nil {
		response.NotFound(c, fmt.Sprintf("there is no book with id %q", id))
		return
	}

	version := etag.Format(book.Version)
	if c.GetHeader("If-None-Match") == version {
		c.Status(http.StatusNotModified)
		return
	}

	c.Header("ETag", version)
	response.Success(c, http.StatusOK, book)
}

// List - GET /api/v1/books
// Supported query params: title (substring), isbn (exact).
func (h *Handler) List(c *gin.Context) {
	var filter model.BookFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "malformed query: "+err.Error())
		return
	}

	books, err := h.service.Find(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}
	if len(books) == 0 {
		response.NotFound(c, "no books match the given criteria")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// Update - PUT /api/v1/books/:id
// The If-Match header must carry the version token of the caller's snapshot.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	version := c.GetHeader("If-Match")

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request body: "+err.Error())
		return
	}

	book := req.ToEntity()
	newVersion, err := h.service.Update(c.Request.Context(), id, &book, version)
	if err != nil {
		response.WriteFault(c, err)
		return
	}

	c.Header("ETag", etag.Format(newVersion))
	c.Status(http.StatusNoContent)
}

// Delete - DELETE /api/v1/books/:id
// Idempotent: unknown and malformed ids also yield 204.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}
