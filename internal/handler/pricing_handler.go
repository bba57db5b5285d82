package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/service"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// PricingHandler serves the public pricing endpoints.
type PricingHandler struct {
	service *service.PricingService
}

// NewPricingHandler creates a new handler.
func NewPricingHandler(svc *service.PricingService) *PricingHandler {
	return &PricingHandler{service: svc}
}

// List godoc
// @Summary List active pricing plans
// @Description Plans include derived six and twelve month totals
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /pricing-plans [get]
func (h *PricingHandler) List(c *gin.Context) {
	plans, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plans, nil)
}

// Get godoc
// @Summary Fetch one pricing plan
// @Tags Pricing
// @Produce json
// @Param plan_id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /pricing-plans/{plan_id} [get]
func (h *PricingHandler) Get(c *gin.Context) {
	plan, err := h.service.Get(c.Request.Context(), c.Param("plan_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}
