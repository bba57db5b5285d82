package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

type fakeEnrollmentStore struct {
	existing map[string]bool
	created  []*models.Enrollment
	rows     []models.EnrolledCourse
}

func (f *fakeEnrollmentStore) Exists(_ context.Context, userID, courseID string) (bool, error) {
	return f.existing[userID+"/"+courseID], nil
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	f.created = append(f.created, enrollment)
	f.existing[enrollment.UserID+"/"+enrollment.CourseID] = true
	return nil
}

func (f *fakeEnrollmentStore) ListByUser(_ context.Context, _ string) ([]models.EnrolledCourse, error) {
	return f.rows, nil
}

type fakeCourseByID struct {
	courses map[string]*models.Course
}

func (f *fakeCourseByID) FindByID(_ context.Context, id string) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func TestEnrollSuccess(t *testing.T) {
	enrollments := &fakeEnrollmentStore{existing: map[string]bool{}}
	courses := &fakeCourseByID{courses: map[string]*models.Course{
		"course-1": {ID: "course-1", Title: "Tajweed Basics", TrialAvailable: true, TrialDays: 3},
	}}
	svc := NewEnrollmentService(enrollments, courses, nil)

	result, err := svc.Enroll(context.Background(), "user-1", "course-1")

	require.NoError(t, err)
	assert.Equal(t, models.EnrollStatusSuccess, result.Status)
	assert.Contains(t, result.Message, "Tajweed Basics")
	require.Len(t, enrollments.created, 1)
	assert.True(t, enrollments.created[0].IsTrial)
	assert.NotNil(t, enrollments.created[0].TrialStarted)
}

func TestEnrollWithoutTrial(t *testing.T) {
	enrollments := &fakeEnrollmentStore{existing: map[string]bool{}}
	courses := &fakeCourseByID{courses: map[string]*models.Course{
		"course-1": {ID: "course-1", Title: "Advanced Tafsir"},
	}}
	svc := NewEnrollmentService(enrollments, courses, nil)

	_, err := svc.Enroll(context.Background(), "user-1", "course-1")

	require.NoError(t, err)
	require.Len(t, enrollments.created, 1)
	assert.False(t, enrollments.created[0].IsTrial)
	assert.Nil(t, enrollments.created[0].TrialStarted)
}

func TestEnrollDuplicateIsSoftOutcome(t *testing.T) {
	enrollments := &fakeEnrollmentStore{existing: map[string]bool{"user-1/course-1": true}}
	courses := &fakeCourseByID{courses: map[string]*models.Course{
		"course-1": {ID: "course-1", Title: "Tajweed Basics"},
	}}
	svc := NewEnrollmentService(enrollments, courses, nil)

	result, err := svc.Enroll(context.Background(), "user-1", "course-1")

	// Re-enrolling is not an error: the existing row stays and the caller
	// is told already_enrolled. The check-then-insert pair is not atomic,
	// so this guards sequential duplicates only.
	require.NoError(t, err)
	assert.Equal(t, models.EnrollStatusAlreadyEnrolled, result.Status)
	assert.Empty(t, enrollments.created)
}

func TestEnrollCourseNotFound(t *testing.T) {
	svc := NewEnrollmentService(
		&fakeEnrollmentStore{existing: map[string]bool{}},
		&fakeCourseByID{courses: map[string]*models.Course{}},
		nil,
	)

	_, err := svc.Enroll(context.Background(), "user-1", "missing")

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestMyCoursesEvaluatesTrialOnRead(t *testing.T) {
	expiredStart := time.Now().UTC().Add(-4 * 24 * time.Hour)
	liveStart := time.Now().UTC().Add(-1 * 24 * time.Hour)
	enrollments := &fakeEnrollmentStore{
		existing: map[string]bool{},
		rows: []models.EnrolledCourse{
			{
				Enrollment: models.Enrollment{IsTrial: true, TrialStarted: &expiredStart},
				Course:     models.Course{Title: "Expired Trial", TrialDays: 3},
			},
			{
				Enrollment: models.Enrollment{IsTrial: true, TrialStarted: &liveStart},
				Course:     models.Course{Title: "Live Trial", TrialDays: 3},
			},
			{
				Enrollment: models.Enrollment{},
				Course:     models.Course{Title: "Paid"},
			},
		},
	}
	svc := NewEnrollmentService(enrollments, &fakeCourseByID{}, nil)

	rows, err := svc.MyCourses(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].TrialExpired)
	assert.False(t, rows[1].TrialExpired)
	assert.False(t, rows[2].TrialExpired)
}
