package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

type enrollmentStore interface {
	Exists(ctx context.Context, userID, courseID string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListByUser(ctx context.Context, userID string) ([]models.EnrolledCourse, error)
}

type enrollmentCourseStore interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// EnrollmentService owns the student side of enrollments: joining a course
// and listing the courses already joined.
type EnrollmentService struct {
	enrollments enrollmentStore
	courses     enrollmentCourseStore
	logger      *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService instance.
func NewEnrollmentService(enrollments enrollmentStore, courses enrollmentCourseStore, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{enrollments: enrollments, courses: courses, logger: logger}
}

// Enroll joins a student to a course. Re-enrolling an already enrolled
// student is not an error: the call reports already_enrolled and leaves the
// existing row untouched.
//
// The duplicate check is a read followed by a write, not a single atomic
// statement. Two concurrent calls for the same pair can both pass the check
// and insert two rows; listings later de-duplicate nothing. Known gap.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*models.EnrollResult, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch course")
	}

	exists, err := s.enrollments.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}
	if exists {
		return &models.EnrollResult{
			Status:  models.EnrollStatusAlreadyEnrolled,
			Message: "You are already enrolled in this course!",
		}, nil
	}

	now := time.Now().UTC()
	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: now,
	}
	if course.TrialAvailable {
		enrollment.IsTrial = true
		enrollment.TrialStarted = &now
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll")
	}

	s.logger.Info("student enrolled",
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
		zap.Bool("is_trial", enrollment.IsTrial))

	return &models.EnrollResult{
		Status:  models.EnrollStatusSuccess,
		Message: "Successfully enrolled in " + course.Title + "!",
	}, nil
}

// MyCourses lists the caller's enrolled courses with the trial flag
// evaluated against the current clock. Expiry is computed on read and never
// written back.
func (s *EnrollmentService) MyCourses(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	courses, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	now := time.Now().UTC()
	for i := range courses {
		if courses[i].IsTrial {
			courses[i].TrialExpired = courses[i].Enrollment.TrialExpired(courses[i].Course.TrialDays, now)
		}
	}
	return courses, nil
}
