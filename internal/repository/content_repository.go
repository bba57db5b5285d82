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

// ContentRepository provides database access for marketing content.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListServices returns marketing services, newest first.
func (r *ContentRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	const query = `SELECT id, title, description, icon, created_at FROM services ORDER BY created_at DESC`
	var services []models.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// ListTestimonials returns student testimonials.
func (r *ContentRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	const query = `SELECT id, author, role, quote, image, created_at FROM testimonials ORDER BY created_at DESC`
	var testimonials []models.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// ListGallery returns gallery images.
func (r *ContentRepository) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	const query = `SELECT id, title, image, created_at FROM gallery_images ORDER BY created_at DESC`
	var images []models.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return images, nil
}

// ListVideos returns videos filtered by title substring with pagination.
func (r *ContentRepository) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, int, error) {
	baseQuery := `FROM videos WHERE 1=1`
	var args []interface{}

	if filter.Title != "" {
		baseQuery += fmt.Sprintf(" AND LOWER(title) LIKE $%d", len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Title)+"%")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 6
	}
	offset := (page - 1) * pageSize

	listQuery := fmt.Sprintf("SELECT id, title, url, created_at %s ORDER BY created_at DESC LIMIT %d OFFSET %d", baseQuery, pageSize, offset)
	var videos []models.Video
	if err := r.db.SelectContext(ctx, &videos, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	return videos, total, nil
}

// CreateService inserts a marketing service (seeding/admin).
func (r *ContentRepository) CreateService(ctx context.Context, service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO services (id, title, description, icon, created_at) VALUES (:id, :title, :description, :icon, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, service); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

// CreateTestimonial inserts a testimonial (seeding/admin).
func (r *ContentRepository) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = uuid.NewString()
	}
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO testimonials (id, author, role, quote, image, created_at) VALUES (:id, :author, :role, :quote, :image, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, testimonial); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}
