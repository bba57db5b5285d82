package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/middleware"
	"github.com/zaalasociety/academy-api/internal/service"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// EnrollmentHandler serves the student enrollment endpoints.
type EnrollmentHandler struct {
	service *service.EnrollmentService
	metrics *service.MetricsService
}

// NewEnrollmentHandler creates a new handler.
func NewEnrollmentHandler(svc *service.EnrollmentService, metrics *service.MetricsService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc, metrics: metrics}
}

// Enroll godoc
// @Summary Enroll the current student in a course
// @Description Joining again is not an error; the body reports already_enrolled with HTTP 200
// @Tags Enrollments
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} models.EnrollResult
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /enroll-course/{course_id} [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.Enroll(c.Request.Context(), principal.ID, c.Param("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RecordEnroll(string(result.Status))
	// Flat body, not the envelope: clients key off status being one of
	// success or already_enrolled, both delivered with HTTP 200.
	c.JSON(http.StatusOK, result)
}

// MyCourses godoc
// @Summary List the current student's enrolled courses
// @Tags Enrollments
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /my-courses [get]
func (h *EnrollmentHandler) MyCourses(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.service.MyCourses(c.Request.Context(), principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}
