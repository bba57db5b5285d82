package service

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/pkg/export"
)

type fakeInstructorRepo struct {
	byID map[string]*models.Instructor
}

func (f *fakeInstructorRepo) FindByID(_ context.Context, id string) (*models.Instructor, error) {
	if i, ok := f.byID[id]; ok {
		// Return a copy, like the sqlx repository scanning a fresh row, so
		// later UpdateImage mutations don't alias rows already handed out.
		copied := *i
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeInstructorRepo) UpdateProfile(_ context.Context, instructor *models.Instructor) error {
	f.byID[instructor.ID] = instructor
	return nil
}

func (f *fakeInstructorRepo) UpdateImage(_ context.Context, id, image string) error {
	if i, ok := f.byID[id]; ok {
		i.Image = image
	}
	return nil
}

type fakeInstructorCourses struct {
	courses  []models.CourseWithStats
	sections map[string][]models.CurriculumSection
	created  []*models.Course
}

func (f *fakeInstructorCourses) ListByInstructor(_ context.Context, _ string) ([]models.CourseWithStats, error) {
	return f.courses, nil
}

func (f *fakeInstructorCourses) FindByIDForInstructor(_ context.Context, id, _ string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			course := c.Course
			return &course, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeInstructorCourses) Sections(_ context.Context, courseID string) ([]models.CurriculumSection, error) {
	return f.sections[courseID], nil
}

func (f *fakeInstructorCourses) Create(_ context.Context, course *models.Course) error {
	course.ID = "course-new"
	f.created = append(f.created, course)
	return nil
}

func (f *fakeInstructorCourses) CreateSection(_ context.Context, section *models.CurriculumSection) error {
	section.ID = "section-new"
	return nil
}

func (f *fakeInstructorCourses) CreateLesson(_ context.Context, _ *models.Lesson) error {
	return nil
}

type fakeInstructorEnrollments struct {
	rows       []models.EnrollmentDetail
	totalCount int
	trialCount int
	totalByID  map[string]int
	trialByID  map[string]int
	top        []models.CourseWithStats
	lastFilter models.EnrollmentFilter
}

func (f *fakeInstructorEnrollments) ListByInstructor(_ context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeInstructorEnrollments) CountByInstructor(_ context.Context, _ string, isTrial *bool) (int, error) {
	if isTrial == nil {
		return f.totalCount, nil
	}
	if *isTrial {
		return f.trialCount, nil
	}
	return f.totalCount - f.trialCount, nil
}

func (f *fakeInstructorEnrollments) CountByCourse(_ context.Context, courseID string, isTrial *bool) (int, error) {
	if isTrial == nil {
		return f.totalByID[courseID], nil
	}
	if *isTrial {
		return f.trialByID[courseID], nil
	}
	return f.totalByID[courseID] - f.trialByID[courseID], nil
}

func (f *fakeInstructorEnrollments) TopCoursesByEnrollment(_ context.Context, _ string, _ int) ([]models.CourseWithStats, error) {
	return f.top, nil
}

type fakeImageStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeImageStorage) SaveImage(subdir string, _ *multipart.FileHeader) (string, error) {
	rel := subdir + "/new-image.png"
	f.saved = append(f.saved, rel)
	return rel, nil
}

func (f *fakeImageStorage) Delete(rel string) error {
	f.deleted = append(f.deleted, rel)
	return nil
}

func newInstructorService(courses *fakeInstructorCourses, enrollments *fakeInstructorEnrollments, repo *fakeInstructorRepo, storage *fakeImageStorage) *InstructorService {
	if repo == nil {
		repo = &fakeInstructorRepo{byID: map[string]*models.Instructor{}}
	}
	if storage == nil {
		storage = &fakeImageStorage{}
	}
	return NewInstructorService(repo, courses, enrollments, storage, nil, nil, nil)
}

func TestDashboardRevenueSkipsUnparsablePrices(t *testing.T) {
	courses := &fakeInstructorCourses{courses: []models.CourseWithStats{
		{Course: models.Course{ID: "c1", Price: "49.99"}, EnrollmentCount: 2},
		{Course: models.Course{ID: "c2", Price: "Contact us"}, EnrollmentCount: 100},
		{Course: models.Course{ID: "c3", Price: "20"}, EnrollmentCount: 3},
	}}
	enrollments := &fakeInstructorEnrollments{
		totalCount: 10,
		trialCount: 4,
	}
	svc := newInstructorService(courses, enrollments, nil, nil)

	dashboard, err := svc.Dashboard(context.Background(), "instr-1")

	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.TotalCourses)
	assert.Equal(t, 10, dashboard.TotalStudents)
	assert.Equal(t, 4, dashboard.TrialStudents)
	assert.Equal(t, 6, dashboard.PaidStudents)
	// 49.99*2 + 20*3; the free-form "Contact us" price contributes zero.
	assert.Equal(t, "159.98", dashboard.EstimatedRevenue)
}

func TestDashboardRevenueCountsTrialEnrollments(t *testing.T) {
	// 2 paid and 3 trial seats on a 10.00 course all count toward the
	// estimate.
	courses := &fakeInstructorCourses{courses: []models.CourseWithStats{
		{Course: models.Course{ID: "c1", Price: "10.00"}, EnrollmentCount: 5},
	}}
	enrollments := &fakeInstructorEnrollments{totalCount: 5, trialCount: 3}
	svc := newInstructorService(courses, enrollments, nil, nil)

	dashboard, err := svc.Dashboard(context.Background(), "instr-1")

	require.NoError(t, err)
	assert.Equal(t, "50.00", dashboard.EstimatedRevenue)
}

func TestCourseDetailOwnershipScoped(t *testing.T) {
	courses := &fakeInstructorCourses{
		courses:  []models.CourseWithStats{{Course: models.Course{ID: "c1", Title: "Mine"}}},
		sections: map[string][]models.CurriculumSection{"c1": {{ID: "s1", Title: "Intro"}}},
	}
	svc := newInstructorService(courses, &fakeInstructorEnrollments{}, nil, nil)

	detail, err := svc.CourseDetail(context.Background(), "c1", "instr-1")
	require.NoError(t, err)
	assert.Equal(t, "Mine", detail.Title)
	require.Len(t, detail.Sections, 1)

	_, err = svc.CourseDetail(context.Background(), "other", "instr-1")
	assert.Error(t, err)
}

func TestCourseDetailStatsAndRoster(t *testing.T) {
	courses := &fakeInstructorCourses{
		courses:  []models.CourseWithStats{{Course: models.Course{ID: "c1", Title: "Mine", Price: "49.99"}}},
		sections: map[string][]models.CurriculumSection{},
	}
	enrollments := &fakeInstructorEnrollments{
		totalByID: map[string]int{"c1": 4},
		trialByID: map[string]int{"c1": 1},
		rows: []models.EnrollmentDetail{
			{Username: "fatima", CourseTitle: "Mine"},
			{Username: "yusuf", CourseTitle: "Mine"},
		},
	}
	svc := newInstructorService(courses, enrollments, nil, nil)

	detail, err := svc.CourseDetail(context.Background(), "c1", "instr-1")

	require.NoError(t, err)
	assert.Equal(t, 4, detail.TotalEnrolled)
	assert.Equal(t, 1, detail.TrialEnrolled)
	assert.Equal(t, 3, detail.PaidEnrolled)
	assert.Equal(t, "199.96", detail.EstimatedRevenue)
	require.Len(t, detail.Roster, 2)
	assert.Equal(t, "fatima", detail.Roster[0].Username)
	assert.Equal(t, "c1", enrollments.lastFilter.CourseID)
	assert.Equal(t, "instr-1", enrollments.lastFilter.InstructorID)
}

func TestCreateCourseBuildsCurriculum(t *testing.T) {
	courses := &fakeInstructorCourses{}
	svc := newInstructorService(courses, &fakeInstructorEnrollments{}, nil, nil)

	course, err := svc.CreateCourse(context.Background(), "instr-1", models.CreateCourseRequest{
		Title:       "Quran Recitation: Level One!",
		Description: "Fundamentals",
		Sections: []models.CreateSectionRequest{
			{Title: "Start", Lessons: []models.CreateLessonRequest{{Title: "Alphabet"}, {Title: "Harakat"}}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "quran-recitation-level-one", course.Slug)
	assert.Equal(t, 2, course.LessonsCount)
	require.Len(t, courses.created, 1)
	require.NotNil(t, courses.created[0].InstructorID)
	assert.Equal(t, "instr-1", *courses.created[0].InstructorID)
}

func TestEnrollmentReportCSV(t *testing.T) {
	started := time.Now().UTC().Add(-10 * 24 * time.Hour)
	enrollments := &fakeInstructorEnrollments{rows: []models.EnrollmentDetail{
		{
			Enrollment:  models.Enrollment{EnrolledAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), IsTrial: true, TrialStarted: &started},
			Username:    "fatima",
			UserEmail:   "fatima@example.com",
			CourseTitle: "Tajweed Basics",
			TrialDays:   3,
		},
		{
			Enrollment:  models.Enrollment{EnrolledAt: time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)},
			Username:    "yusuf",
			UserEmail:   "yusuf@example.com",
			CourseTitle: "Advanced Tafsir",
		},
	}}
	svc := newInstructorService(&fakeInstructorCourses{}, enrollments, nil, nil)

	data, err := svc.EnrollmentReport(context.Background(), models.EnrollmentFilter{InstructorID: "instr-1"}, export.FormatCSV)

	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "Student,Email,Course,Enrolled At,Type,Trial Status")
	assert.Contains(t, body, "fatima,fatima@example.com,Tajweed Basics,2026-02-01 09:00,trial,expired")
	assert.Contains(t, body, "yusuf,yusuf@example.com,Advanced Tafsir,2026-02-02 09:00,paid,-")
}

func TestEnrollmentReportRejectsUnknownFormat(t *testing.T) {
	svc := newInstructorService(&fakeInstructorCourses{}, &fakeInstructorEnrollments{}, nil, nil)

	_, err := svc.EnrollmentReport(context.Background(), models.EnrollmentFilter{}, export.Format("xlsx"))
	assert.Error(t, err)
}

func TestUpdateImageReplacesOldFile(t *testing.T) {
	repo := &fakeInstructorRepo{byID: map[string]*models.Instructor{
		"instr-1": {ID: "instr-1", Image: "instructors/old.png"},
	}}
	storage := &fakeImageStorage{}
	svc := newInstructorService(&fakeInstructorCourses{}, &fakeInstructorEnrollments{}, repo, storage)

	rel, err := svc.UpdateImage(context.Background(), "instr-1", &multipart.FileHeader{Filename: "new.png"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "instructors/"))
	assert.Equal(t, []string{"instructors/old.png"}, storage.deleted)
}
