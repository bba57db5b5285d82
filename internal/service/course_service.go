package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

const (
	cacheKeyCourseList   = "catalog:courses"
	cacheKeyCoursePrefix = "catalog:course:"
)

type courseStore interface {
	List(ctx context.Context) ([]models.CourseSummary, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Sections(ctx context.Context, courseID string) ([]models.CurriculumSection, error)
}

type courseInstructorStore interface {
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

// CourseService serves the public catalog. Course content is read far more
// often than it changes, so both the listing and the detail view go through
// the cache.
type CourseService struct {
	courses     courseStore
	instructors courseInstructorStore
	cache       *CacheService
	logger      *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(courses courseStore, instructors courseInstructorStore, cache *CacheService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, instructors: instructors, cache: cache, logger: logger}
}

// List returns all catalog courses with instructor names.
func (s *CourseService) List(ctx context.Context) ([]models.CourseSummary, error) {
	var cached []models.CourseSummary
	if s.cache.Get(ctx, cacheKeyCourseList, &cached) {
		return cached, nil
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	s.cache.Set(ctx, cacheKeyCourseList, courses, 0)
	return courses, nil
}

// Detail returns a course with its instructor card and curriculum tree.
func (s *CourseService) Detail(ctx context.Context, id string) (*models.CourseDetail, error) {
	key := cacheKeyCoursePrefix + id
	var cached models.CourseDetail
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch course")
	}

	detail := &models.CourseDetail{Course: *course, Sections: []models.CurriculumSection{}}

	if course.InstructorID != nil {
		instructor, err := s.instructors.FindByID(ctx, *course.InstructorID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch instructor")
			}
		} else {
			public := instructor.Public()
			detail.Instructor = &public
		}
	}

	sections, err := s.courses.Sections(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch curriculum")
	}
	detail.Sections = sections

	s.cache.Set(ctx, key, detail, 0)
	return detail, nil
}

// InvalidateCatalog drops all cached catalog entries. Called after any
// instructor-side course mutation.
func (s *CourseService) InvalidateCatalog(ctx context.Context) {
	s.cache.Invalidate(ctx, "catalog:*")
}
