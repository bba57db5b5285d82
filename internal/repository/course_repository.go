package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zaalasociety/academy-api/internal/models"
)

const courseColumns = `c.id, c.title, c.slug, c.image, c.description, c.overview, c.price, c.duration_weeks, c.lessons_count, c.instructor_id, c.trial_available, c.trial_days, c.created_at`

// CourseRepository provides database access for the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns catalog rows with the owning instructor name.
func (r *CourseRepository) List(ctx context.Context) ([]models.CourseSummary, error) {
	query := fmt.Sprintf(`SELECT %s, COALESCE(i.name, '') AS instructor_name
		FROM courses c
		LEFT JOIN instructors i ON i.id = c.instructor_id
		ORDER BY c.created_at DESC`, courseColumns)
	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID returns a course by identifier.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses c WHERE c.id = $1 LIMIT 1`, courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return &course, nil
}

// Sections returns the curriculum tree for a course ordered by position.
func (r *CourseRepository) Sections(ctx context.Context, courseID string) ([]models.CurriculumSection, error) {
	const sectionQuery = `SELECT id, course_id, title, description, position FROM curriculum_sections WHERE course_id = $1 ORDER BY position`
	var sections []models.CurriculumSection
	if err := r.db.SelectContext(ctx, &sections, sectionQuery, courseID); err != nil {
		return nil, fmt.Errorf("list curriculum sections: %w", err)
	}
	if len(sections) == 0 {
		return sections, nil
	}

	ids := make([]string, len(sections))
	index := make(map[string]int, len(sections))
	for i, section := range sections {
		ids[i] = section.ID
		index[section.ID] = i
	}

	lessonQuery, args, err := sqlx.In(`SELECT id, section_id, title, content, preview_available, position FROM lessons WHERE section_id IN (?) ORDER BY position`, ids)
	if err != nil {
		return nil, fmt.Errorf("build lessons query: %w", err)
	}
	lessonQuery = r.db.Rebind(lessonQuery)

	var lessons []models.Lesson
	if err := r.db.SelectContext(ctx, &lessons, lessonQuery, args...); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	for _, lesson := range lessons {
		if i, ok := index[lesson.SectionID]; ok {
			sections[i].Lessons = append(sections[i].Lessons, lesson)
		}
	}
	return sections, nil
}

// ListByInstructor returns an instructor's courses with enrollment counts.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]models.CourseWithStats, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(e.id) AS enrollment_count
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.instructor_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`, courseColumns)
	var courses []models.CourseWithStats
	if err := r.db.SelectContext(ctx, &courses, query, instructorID); err != nil {
		return nil, fmt.Errorf("list instructor courses: %w", err)
	}
	return courses, nil
}

// FindByIDForInstructor returns a course only when owned by the instructor.
func (r *CourseRepository) FindByIDForInstructor(ctx context.Context, id, instructorID string) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses c WHERE c.id = $1 AND c.instructor_id = $2 LIMIT 1`, courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id, instructorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find instructor course: %w", err)
	}
	return &course, nil
}

// Create inserts a course (seeding/admin).
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (id, title, slug, image, description, overview, price, duration_weeks, lessons_count, instructor_id, trial_available, trial_days, created_at)
		VALUES (:id, :title, :slug, :image, :description, :overview, :price, :duration_weeks, :lessons_count, :instructor_id, :trial_available, :trial_days, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// CreateSection inserts a curriculum section (seeding/admin).
func (r *CourseRepository) CreateSection(ctx context.Context, section *models.CurriculumSection) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	const query = `INSERT INTO curriculum_sections (id, course_id, title, description, position)
		VALUES (:id, :course_id, :title, :description, :position)`
	if _, err := r.db.NamedExecContext(ctx, query, section); err != nil {
		return fmt.Errorf("create curriculum section: %w", err)
	}
	return nil
}

// CreateLesson inserts a lesson (seeding/admin).
func (r *CourseRepository) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	const query = `INSERT INTO lessons (id, section_id, title, content, preview_available, position)
		VALUES (:id, :section_id, :title, :content, :preview_available, :position)`
	if _, err := r.db.NamedExecContext(ctx, query, lesson); err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}
