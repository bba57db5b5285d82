package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/service"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit godoc
// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body models.ContactMessageRequest true "Contact payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}

	message, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}

// Messages godoc
// @Summary List contact submissions, newest first
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /instructor/messages [get]
func (h *ContactHandler) Messages(c *gin.Context) {
	messages, err := h.service.Messages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages, nil)
}
