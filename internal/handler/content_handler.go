package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/service"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// ContentHandler serves the marketing content endpoints.
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler creates a new handler.
func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{service: svc}
}

// Services godoc
// @Summary List marketing services
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /services [get]
func (h *ContentHandler) Services(c *gin.Context) {
	rows, err := h.service.Services(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// Testimonials godoc
// @Summary List testimonials
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /testimonials [get]
func (h *ContentHandler) Testimonials(c *gin.Context) {
	rows, err := h.service.Testimonials(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// Gallery godoc
// @Summary List gallery images
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	rows, err := h.service.Gallery(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// Videos godoc
// @Summary List videos
// @Tags Content
// @Produce json
// @Param title query string false "Filter by title"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /videos [get]
func (h *ContentHandler) Videos(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	filter := models.VideoFilter{
		Title:    c.Query("title"),
		Page:     page,
		PageSize: pageSize,
	}

	videos, pagination, err := h.service.Videos(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, videos, pagination)
}

// Instructors godoc
// @Summary List public teacher cards
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *ContentHandler) Instructors(c *gin.Context) {
	rows, err := h.service.Instructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}
