package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaalasociety/academy-api/internal/models"
)

func TestEnrollmentRepositoryExists(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)")).
		WithArgs("user-1", "course-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "user-1", "course-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollments").
		WillReturnResult(sqlmock.NewResult(1, 1))

	enrollment := &models.Enrollment{UserID: "user-1", CourseID: "course-1"}
	require.NoError(t, repo.Create(context.Background(), enrollment))
	assert.NotEmpty(t, enrollment.ID)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListByInstructorFilters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "course_id", "enrolled_at", "is_trial", "trial_started", "username", "user_email", "course_title", "trial_days"}).
		AddRow("enr-1", "user-1", "course-1", now, true, now, "fatima", "fatima@example.com", "Tajweed Basics", 3)

	trial := true
	mock.ExpectQuery(regexp.QuoteMeta("AND e.is_trial = $3")).
		WithArgs("instr-1", "course-1", true, "%fati%").
		WillReturnRows(rows)

	result, err := repo.ListByInstructor(context.Background(), models.EnrollmentFilter{
		InstructorID: "instr-1",
		CourseID:     "course-1",
		IsTrial:      &trial,
		Search:       "Fati",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "fatima", result[0].Username)
	assert.Equal(t, 3, result[0].TrialDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCountByInstructor(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM enrollments e JOIN courses c ON c.id = e.course_id WHERE c.instructor_id = $1")).
		WithArgs("instr-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountByInstructor(context.Background(), "instr-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	trial := true
	mock.ExpectQuery(regexp.QuoteMeta("AND e.is_trial = $2")).
		WithArgs("instr-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	trials, err := repo.CountByInstructor(context.Background(), "instr-1", &trial)
	require.NoError(t, err)
	assert.Equal(t, 5, trials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListByUser(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "course_id", "enrolled_at", "is_trial", "trial_started",
		"course.id", "course.title", "course.slug", "course.image", "course.description",
		"course.overview", "course.price", "course.duration_weeks", "course.lessons_count",
		"course.instructor_id", "course.trial_available", "course.trial_days", "course.created_at",
	}).AddRow("enr-1", "user-1", "course-1", now, true, now,
		"course-1", "Tajweed Basics", "tajweed-basics", "", "", "", "49.99", 12, 24, nil, true, 3, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM enrollments e")).
		WithArgs("user-1").
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Tajweed Basics", result[0].Course.Title)
	assert.True(t, result[0].IsTrial)
	assert.NoError(t, mock.ExpectationsWereMet())
}
