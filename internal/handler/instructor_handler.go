package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/middleware"
	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/service"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/export"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// InstructorHandler serves the instructor portal endpoints. Every route is
// behind the session guard with the instructor role.
type InstructorHandler struct {
	service *service.InstructorService
}

// NewInstructorHandler creates a new handler.
func NewInstructorHandler(svc *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{service: svc}
}

// Dashboard godoc
// @Summary Instructor dashboard aggregates
// @Tags Instructor
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /instructor/dashboard [get]
func (h *InstructorHandler) Dashboard(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Courses godoc
// @Summary List the instructor's courses
// @Tags Instructor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructor/courses [get]
func (h *InstructorHandler) Courses(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.service.Courses(c.Request.Context(), principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// CourseDetail godoc
// @Summary Fetch one owned course with curriculum, stats and roster
// @Tags Instructor
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /instructor/courses/{course_id} [get]
func (h *InstructorHandler) CourseDetail(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	detail, err := h.service.CourseDetail(c.Request.Context(), c.Param("course_id"), principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// CreateCourse godoc
// @Summary Create a course with its curriculum
// @Tags Instructor
// @Accept json
// @Produce json
// @Param payload body models.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /instructor/courses [post]
func (h *InstructorHandler) CreateCourse(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), principal.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Students godoc
// @Summary List enrolled students across the instructor's courses
// @Tags Instructor
// @Produce json
// @Param course_id query string false "Filter by course"
// @Param type query string false "trial or paid"
// @Param search query string false "Match username, email, or course title"
// @Success 200 {object} response.Envelope
// @Router /instructor/students [get]
func (h *InstructorHandler) Students(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	rows, err := h.service.Students(c.Request.Context(), rosterFilter(c, principal.ID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// EnrollmentReport godoc
// @Summary Download the enrollment roster as CSV or PDF
// @Tags Instructor
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf, default csv"
// @Param course_id query string false "Filter by course"
// @Param type query string false "trial or paid"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /instructor/reports/enrollments [get]
func (h *InstructorHandler) EnrollmentReport(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := export.Format(c.DefaultQuery("format", "csv"))
	if format != export.FormatCSV && format != export.FormatPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}

	data, err := h.service.EnrollmentReport(c.Request.Context(), rosterFilter(c, principal.ID), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("enrollments-%s.%s", time.Now().UTC().Format("20060102"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// Profile godoc
// @Summary Fetch the instructor's own profile
// @Tags Instructor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructor/profile [get]
func (h *InstructorHandler) Profile(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	instructor, err := h.service.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructor, nil)
}

// UpdateProfile godoc
// @Summary Update the instructor's profile
// @Tags Instructor
// @Accept json
// @Produce json
// @Param payload body models.UpdateInstructorProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /instructor/profile [put]
func (h *InstructorHandler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.UpdateInstructorProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	instructor, err := h.service.UpdateProfile(c.Request.Context(), principal.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructor, nil)
}

// UpdateImage godoc
// @Summary Upload a new instructor image
// @Tags Instructor
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Instructor image"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /instructor/profile/image [post]
func (h *InstructorHandler) UpdateImage(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "image file is required"))
		return
	}

	rel, err := h.service.UpdateImage(c.Request.Context(), principal.ID, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"image": rel}, nil)
}

// rosterFilter builds the roster filter from query params, scoped to the
// calling instructor.
func rosterFilter(c *gin.Context, instructorID string) models.EnrollmentFilter {
	filter := models.EnrollmentFilter{
		InstructorID: instructorID,
		CourseID:     c.Query("course_id"),
		Search:       c.Query("search"),
	}
	switch c.Query("type") {
	case "trial":
		trial := true
		filter.IsTrial = &trial
	case "paid":
		paid := false
		filter.IsTrial = &paid
	}
	return filter
}
