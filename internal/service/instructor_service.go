package service

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/export"
)

const topCoursesLimit = 5

type instructorStore interface {
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
	UpdateProfile(ctx context.Context, instructor *models.Instructor) error
	UpdateImage(ctx context.Context, id, image string) error
}

type instructorCourseStore interface {
	ListByInstructor(ctx context.Context, instructorID string) ([]models.CourseWithStats, error)
	FindByIDForInstructor(ctx context.Context, id, instructorID string) (*models.Course, error)
	Sections(ctx context.Context, courseID string) ([]models.CurriculumSection, error)
	Create(ctx context.Context, course *models.Course) error
	CreateSection(ctx context.Context, section *models.CurriculumSection) error
	CreateLesson(ctx context.Context, lesson *models.Lesson) error
}

type instructorEnrollmentStore interface {
	ListByInstructor(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error)
	CountByInstructor(ctx context.Context, instructorID string, isTrial *bool) (int, error)
	CountByCourse(ctx context.Context, courseID string, isTrial *bool) (int, error)
	TopCoursesByEnrollment(ctx context.Context, instructorID string, limit int) ([]models.CourseWithStats, error)
}

type imageStorage interface {
	SaveImage(subdir string, header *multipart.FileHeader) (string, error)
	Delete(rel string) error
}

// InstructorService backs the instructor portal: dashboard aggregates,
// course management, the student roster, and report exports.
type InstructorService struct {
	instructors instructorStore
	courses     instructorCourseStore
	enrollments instructorEnrollmentStore
	storage     imageStorage
	catalog     *CourseService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewInstructorService constructs an InstructorService instance.
func NewInstructorService(
	instructors instructorStore,
	courses instructorCourseStore,
	enrollments instructorEnrollmentStore,
	storage imageStorage,
	catalog *CourseService,
	validate *validator.Validate,
	logger *zap.Logger,
) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{
		instructors: instructors,
		courses:     courses,
		enrollments: enrollments,
		storage:     storage,
		catalog:     catalog,
		validator:   validate,
		logger:      logger,
	}
}

// Dashboard aggregates the portal landing page figures.
func (s *InstructorService) Dashboard(ctx context.Context, instructorID string) (*models.InstructorDashboard, error) {
	courses, err := s.courses.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	total, err := s.enrollments.CountByInstructor(ctx, instructorID, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	trial := true
	trialCount, err := s.enrollments.CountByInstructor(ctx, instructorID, &trial)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count trial students")
	}

	top, err := s.enrollments.TopCoursesByEnrollment(ctx, instructorID, topCoursesLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to rank courses")
	}

	recent, err := s.enrollments.ListByInstructor(ctx, models.EnrollmentFilter{InstructorID: instructorID, Limit: 10})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recent enrollments")
	}

	// Revenue counts every enrollment, trial included; trials are treated
	// as committed seats in the estimate.
	revenue := decimal.Zero
	for _, course := range courses {
		price, perr := decimal.NewFromString(strings.TrimSpace(course.Price))
		if perr != nil {
			// Prices are free-form text; anything non-numeric counts as zero.
			continue
		}
		revenue = revenue.Add(price.Mul(decimal.NewFromInt(int64(course.EnrollmentCount))))
	}

	return &models.InstructorDashboard{
		TotalCourses:      len(courses),
		TotalStudents:     total,
		TrialStudents:     trialCount,
		PaidStudents:      total - trialCount,
		EstimatedRevenue:  revenue.StringFixed(2),
		TopCourses:        top,
		RecentEnrollments: recent,
	}, nil
}

// Courses lists the instructor's own courses with enrollment counts.
func (s *InstructorService) Courses(ctx context.Context, instructorID string) ([]models.CourseWithStats, error) {
	courses, err := s.courses.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// CourseDetail returns one owned course with its curriculum, enrollment
// stats and roster. Ownership is enforced in the query: another
// instructor's course reads as not found.
func (s *InstructorService) CourseDetail(ctx context.Context, courseID, instructorID string) (*models.InstructorCourseDetail, error) {
	course, err := s.courses.FindByIDForInstructor(ctx, courseID, instructorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch course")
	}

	sections, err := s.courses.Sections(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch curriculum")
	}

	total, err := s.enrollments.CountByCourse(ctx, course.ID, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	trial := true
	trialCount, err := s.enrollments.CountByCourse(ctx, course.ID, &trial)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count trial enrollments")
	}

	roster, err := s.enrollments.ListByInstructor(ctx, models.EnrollmentFilter{InstructorID: instructorID, CourseID: course.ID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	revenue := decimal.Zero
	if price, perr := decimal.NewFromString(strings.TrimSpace(course.Price)); perr == nil {
		revenue = price.Mul(decimal.NewFromInt(int64(total)))
	}

	return &models.InstructorCourseDetail{
		Course:           *course,
		Sections:         sections,
		TotalEnrolled:    total,
		TrialEnrolled:    trialCount,
		PaidEnrolled:     total - trialCount,
		EstimatedRevenue: revenue.StringFixed(2),
		Roster:           roster,
	}, nil
}

// CreateCourse creates a course with its curriculum tree and drops the
// public catalog cache.
func (s *InstructorService) CreateCourse(ctx context.Context, instructorID string, req models.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	lessons := 0
	for _, section := range req.Sections {
		lessons += len(section.Lessons)
	}

	course := &models.Course{
		Title:          req.Title,
		Slug:           slugify(req.Title),
		Image:          req.Image,
		Description:    req.Description,
		Overview:       req.Overview,
		Price:          req.Price,
		DurationWeeks:  req.DurationWeeks,
		LessonsCount:   lessons,
		InstructorID:   &instructorID,
		TrialAvailable: req.TrialAvailable,
		TrialDays:      req.TrialDays,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	for si, sectionReq := range req.Sections {
		section := &models.CurriculumSection{
			CourseID:    course.ID,
			Title:       sectionReq.Title,
			Description: sectionReq.Description,
			Position:    si + 1,
		}
		if err := s.courses.CreateSection(ctx, section); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section")
		}
		for li, lessonReq := range sectionReq.Lessons {
			lesson := &models.Lesson{
				SectionID:        section.ID,
				Title:            lessonReq.Title,
				Content:          lessonReq.Content,
				PreviewAvailable: lessonReq.PreviewAvailable,
				Position:         li + 1,
			}
			if err := s.courses.CreateLesson(ctx, lesson); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create lesson")
			}
		}
	}

	if s.catalog != nil {
		s.catalog.InvalidateCatalog(ctx)
	}

	s.logger.Info("course created",
		zap.String("course_id", course.ID),
		zap.String("instructor_id", instructorID))
	return course, nil
}

// Students lists the roster across the instructor's courses with optional
// course, trial, and search filters.
func (s *InstructorService) Students(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	rows, err := s.enrollments.ListByInstructor(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return rows, nil
}

// EnrollmentReport renders the roster as a downloadable CSV or PDF.
func (s *InstructorService) EnrollmentReport(ctx context.Context, filter models.EnrollmentFilter, format export.Format) ([]byte, error) {
	rows, err := s.enrollments.ListByInstructor(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	now := time.Now().UTC()
	report := export.Report{
		Title:   "Enrollment Report",
		Columns: []string{"Student", "Email", "Course", "Enrolled At", "Type", "Trial Status"},
	}
	for _, row := range rows {
		kind := "paid"
		trialStatus := "-"
		if row.IsTrial {
			kind = "trial"
			if row.TrialExpired(row.TrialDays, now) {
				trialStatus = "expired"
			} else {
				trialStatus = "active"
			}
		}
		report.Rows = append(report.Rows, []string{
			row.Username,
			row.UserEmail,
			row.CourseTitle,
			row.EnrolledAt.Format("2006-01-02 15:04"),
			kind,
			trialStatus,
		})
	}

	switch format {
	case export.FormatPDF:
		data, err := export.RenderPDF(report)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, nil
	case export.FormatCSV:
		data, err := export.RenderCSV(report)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report format")
	}
}

// Profile returns the instructor's own record.
func (s *InstructorService) Profile(ctx context.Context, instructorID string) (*models.Instructor, error) {
	instructor, err := s.instructors.FindByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch instructor")
	}
	return instructor, nil
}

// UpdateProfile applies editable instructor fields.
func (s *InstructorService) UpdateProfile(ctx context.Context, instructorID string, req models.UpdateInstructorProfileRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	instructor, err := s.Profile(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		instructor.Name = req.Name
	}
	if req.Title != "" {
		instructor.Title = req.Title
	}
	if req.Bio != "" {
		instructor.Bio = req.Bio
	}
	instructor.UpdatedAt = time.Now().UTC()

	if err := s.instructors.UpdateProfile(ctx, instructor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return instructor, nil
}

// UpdateImage stores a new profile image and removes the previous file.
func (s *InstructorService) UpdateImage(ctx context.Context, instructorID string, header *multipart.FileHeader) (string, error) {
	instructor, err := s.Profile(ctx, instructorID)
	if err != nil {
		return "", err
	}

	rel, err := s.storage.SaveImage("instructors", header)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to store image")
	}
	if err := s.instructors.UpdateImage(ctx, instructorID, rel); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update image")
	}

	if instructor.Image != "" {
		if err := s.storage.Delete(instructor.Image); err != nil {
			s.logger.Warn("failed to remove previous image", zap.String("path", instructor.Image), zap.Error(err))
		}
	}
	return rel, nil
}

// slugify lowercases the title and collapses everything outside [a-z0-9]
// into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
