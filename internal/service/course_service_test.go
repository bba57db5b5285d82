package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

type fakeCatalogStore struct {
	summaries []models.CourseSummary
	courses   map[string]*models.Course
	sections  map[string][]models.CurriculumSection
}

func (f *fakeCatalogStore) List(context.Context) ([]models.CourseSummary, error) {
	return f.summaries, nil
}

func (f *fakeCatalogStore) FindByID(_ context.Context, id string) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCatalogStore) Sections(_ context.Context, courseID string) ([]models.CurriculumSection, error) {
	return f.sections[courseID], nil
}

type fakeInstructorByID struct {
	instructors map[string]*models.Instructor
}

func (f *fakeInstructorByID) FindByID(_ context.Context, id string) (*models.Instructor, error) {
	if i, ok := f.instructors[id]; ok {
		return i, nil
	}
	return nil, sql.ErrNoRows
}

func TestCourseDetailAssemblesInstructorAndSections(t *testing.T) {
	instructorID := "instr-1"
	store := &fakeCatalogStore{
		courses: map[string]*models.Course{
			"course-1": {ID: "course-1", Title: "Tajweed Basics", InstructorID: &instructorID},
		},
		sections: map[string][]models.CurriculumSection{
			"course-1": {{ID: "s1", Title: "Intro", Lessons: []models.Lesson{{Title: "Alphabet"}}}},
		},
	}
	instructors := &fakeInstructorByID{instructors: map[string]*models.Instructor{
		"instr-1": {ID: "instr-1", Name: "Ahmad Hassan", Title: "Senior Instructor"},
	}}
	svc := NewCourseService(store, instructors, nil, nil)

	detail, err := svc.Detail(context.Background(), "course-1")

	require.NoError(t, err)
	require.NotNil(t, detail.Instructor)
	assert.Equal(t, "Ahmad Hassan", detail.Instructor.Name)
	require.Len(t, detail.Sections, 1)
	assert.Equal(t, "Intro", detail.Sections[0].Title)
}

func TestCourseDetailMissingInstructorTolerated(t *testing.T) {
	gone := "gone"
	store := &fakeCatalogStore{
		courses:  map[string]*models.Course{"course-1": {ID: "course-1", InstructorID: &gone}},
		sections: map[string][]models.CurriculumSection{},
	}
	svc := NewCourseService(store, &fakeInstructorByID{instructors: map[string]*models.Instructor{}}, nil, nil)

	detail, err := svc.Detail(context.Background(), "course-1")

	require.NoError(t, err)
	assert.Nil(t, detail.Instructor)
}

func TestCourseDetailNotFound(t *testing.T) {
	svc := NewCourseService(
		&fakeCatalogStore{courses: map[string]*models.Course{}},
		&fakeInstructorByID{},
		nil, nil,
	)

	_, err := svc.Detail(context.Background(), "missing")

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCourseListPassesThrough(t *testing.T) {
	store := &fakeCatalogStore{summaries: []models.CourseSummary{
		{Course: models.Course{Title: "Tajweed Basics"}, InstructorName: "Ahmad Hassan"},
	}}
	svc := NewCourseService(store, &fakeInstructorByID{}, nil, nil)

	courses, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Ahmad Hassan", courses[0].InstructorName)
}
