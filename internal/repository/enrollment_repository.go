package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zaalasociety/academy-api/internal/models"
)

// EnrollmentRepository provides database access for enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository creates a new instance of EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Exists reports whether the (user, course) pair already has an enrollment.
// Callers pre-check before Create; the two steps are not atomic, so
// concurrent duplicate submissions can still both pass.
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, courseID); err != nil {
		return false, fmt.Errorf("check enrollment exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (id, user_id, course_id, enrolled_at, is_trial, trial_started)
		VALUES (:id, :user_id, :course_id, :enrolled_at, :is_trial, :trial_started)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListByUser returns a user's enrollments joined with their courses.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	const query = `SELECT e.id, e.user_id, e.course_id, e.enrolled_at, e.is_trial, e.trial_started,
			c.id AS "course.id", c.title AS "course.title", c.slug AS "course.slug", c.image AS "course.image",
			c.description AS "course.description", c.overview AS "course.overview", c.price AS "course.price",
			c.duration_weeks AS "course.duration_weeks", c.lessons_count AS "course.lessons_count",
			c.instructor_id AS "course.instructor_id", c.trial_available AS "course.trial_available",
			c.trial_days AS "course.trial_days", c.created_at AS "course.created_at"
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC`
	var rows []models.EnrolledCourse
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list user enrollments: %w", err)
	}
	return rows, nil
}

// ListByInstructor returns enrollment detail rows across an instructor's
// courses, optionally filtered by trial status and a search term.
func (r *EnrollmentRepository) ListByInstructor(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	query := `SELECT e.id, e.user_id, e.course_id, e.enrolled_at, e.is_trial, e.trial_started,
			u.username, u.email AS user_email, c.title AS course_title, c.trial_days
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		JOIN courses c ON c.id = e.course_id
		WHERE c.instructor_id = $1`
	args := []interface{}{filter.InstructorID}

	if filter.CourseID != "" {
		query += fmt.Sprintf(" AND e.course_id = $%d", len(args)+1)
		args = append(args, filter.CourseID)
	}
	if filter.IsTrial != nil {
		query += fmt.Sprintf(" AND e.is_trial = $%d", len(args)+1)
		args = append(args, *filter.IsTrial)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		query += fmt.Sprintf(" AND (LOWER(u.username) LIKE $%d OR LOWER(u.email) LIKE $%d OR LOWER(c.title) LIKE $%d)", idx, idx, idx)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	query += " ORDER BY e.enrolled_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var rows []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list instructor enrollments: %w", err)
	}
	return rows, nil
}

// CountByInstructor counts enrollments across an instructor's courses,
// optionally restricted to trial or full enrollments.
func (r *EnrollmentRepository) CountByInstructor(ctx context.Context, instructorID string, isTrial *bool) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments e JOIN courses c ON c.id = e.course_id WHERE c.instructor_id = $1`
	args := []interface{}{instructorID}
	if isTrial != nil {
		query += " AND e.is_trial = $2"
		args = append(args, *isTrial)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count instructor enrollments: %w", err)
	}
	return total, nil
}

// CountByCourse counts enrollments for one course, optionally restricted to
// trial or full enrollments.
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID string, isTrial *bool) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`
	args := []interface{}{courseID}
	if isTrial != nil {
		query += " AND is_trial = $2"
		args = append(args, *isTrial)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count course enrollments: %w", err)
	}
	return total, nil
}

// TopCoursesByEnrollment returns an instructor's courses ranked by
// enrollment count.
func (r *EnrollmentRepository) TopCoursesByEnrollment(ctx context.Context, instructorID string, limit int) ([]models.CourseWithStats, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s, COUNT(e.id) AS enrollment_count
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.instructor_id = $1
		GROUP BY c.id
		ORDER BY enrollment_count DESC
		LIMIT %d`, courseColumns, limit)
	var courses []models.CourseWithStats
	if err := r.db.SelectContext(ctx, &courses, query, instructorID); err != nil {
		return nil, fmt.Errorf("rank instructor courses: %w", err)
	}
	return courses, nil
}
