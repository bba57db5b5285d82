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

const instructorColumns = `id, email, password_hash, name, title, bio, image, active, last_login, created_at, updated_at`

// InstructorRepository provides database access for instructor accounts.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository creates a new instance of InstructorRepository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// FindActiveByEmail returns an active instructor by exact email. Inactive
// accounts read the same as missing ones.
func (r *InstructorRepository) FindActiveByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructors WHERE email = $1 AND active = TRUE LIMIT 1`, instructorColumns)
	var instructor models.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find active instructor by email: %w", err)
	}
	return &instructor, nil
}

// FindByID returns an instructor by identifier.
func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructors WHERE id = $1 LIMIT 1`, instructorColumns)
	var instructor models.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find instructor by id: %w", err)
	}
	return &instructor, nil
}

// ListPublic returns instructor cards for the catalog.
func (r *InstructorRepository) ListPublic(ctx context.Context) ([]models.InstructorPublic, error) {
	const query = `SELECT id, name, title, bio, image FROM instructors WHERE active = TRUE ORDER BY name`
	var instructors []models.InstructorPublic
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// Create inserts a new instructor account (administrative seeding).
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID == "" {
		instructor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if instructor.CreatedAt.IsZero() {
		instructor.CreatedAt = now
	}
	instructor.UpdatedAt = now

	const query = `INSERT INTO instructors (id, email, password_hash, name, title, bio, image, active, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :name, :title, :bio, :image, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, instructor); err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}
	return nil
}

// UpdateProfile updates editable instructor fields.
func (r *InstructorRepository) UpdateProfile(ctx context.Context, instructor *models.Instructor) error {
	instructor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE instructors SET name = :name, title = :title, bio = :bio, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, instructor); err != nil {
		return fmt.Errorf("update instructor profile: %w", err)
	}
	return nil
}

// UpdateImage stores the relative path of a newly uploaded profile image.
func (r *InstructorRepository) UpdateImage(ctx context.Context, id, image string) error {
	const query = `UPDATE instructors SET image = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, image, time.Now().UTC()); err != nil {
		return fmt.Errorf("update instructor image: %w", err)
	}
	return nil
}

// UpdateLastLogin updates the last_login timestamp for an instructor.
func (r *InstructorRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE instructors SET last_login = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts, ts); err != nil {
		return fmt.Errorf("update instructor last login: %w", err)
	}
	return nil
}
