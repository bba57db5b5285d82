package service

import (
	"context"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

const (
	cacheKeyServices     = "content:services"
	cacheKeyTestimonials = "content:testimonials"
	cacheKeyGallery      = "content:gallery"
)

type contentStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListGallery(ctx context.Context) ([]models.GalleryImage, error)
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, int, error)
}

type instructorListStore interface {
	ListPublic(ctx context.Context) ([]models.InstructorPublic, error)
}

// ContentService serves the marketing surfaces: services, testimonials,
// gallery, videos, and the public teacher listing.
type ContentService struct {
	content     contentStore
	instructors instructorListStore
	cache       *CacheService
}

// NewContentService constructs a ContentService instance.
func NewContentService(content contentStore, instructors instructorListStore, cache *CacheService) *ContentService {
	return &ContentService{content: content, instructors: instructors, cache: cache}
}

// Services lists marketing offerings.
func (s *ContentService) Services(ctx context.Context) ([]models.Service, error) {
	var cached []models.Service
	if s.cache.Get(ctx, cacheKeyServices, &cached) {
		return cached, nil
	}
	services, err := s.content.ListServices(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list services")
	}
	s.cache.Set(ctx, cacheKeyServices, services, 0)
	return services, nil
}

// Testimonials lists student quotes.
func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var cached []models.Testimonial
	if s.cache.Get(ctx, cacheKeyTestimonials, &cached) {
		return cached, nil
	}
	rows, err := s.content.ListTestimonials(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	s.cache.Set(ctx, cacheKeyTestimonials, rows, 0)
	return rows, nil
}

// Gallery lists gallery images.
func (s *ContentService) Gallery(ctx context.Context) ([]models.GalleryImage, error) {
	var cached []models.GalleryImage
	if s.cache.Get(ctx, cacheKeyGallery, &cached) {
		return cached, nil
	}
	rows, err := s.content.ListGallery(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list gallery")
	}
	s.cache.Set(ctx, cacheKeyGallery, rows, 0)
	return rows, nil
}

// Videos lists videos filtered by title with pagination metadata.
func (s *ContentService) Videos(ctx context.Context, filter models.VideoFilter) ([]models.Video, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 6
	}

	videos, total, err := s.content.ListVideos(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list videos")
	}
	return videos, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// Instructors lists the public teacher cards.
func (s *ContentService) Instructors(ctx context.Context) ([]models.InstructorPublic, error) {
	rows, err := s.instructors.ListPublic(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return rows, nil
}
