package models

import "time"

// Course is a catalog entry. Price is stored as entered by the back office;
// it is parsed as a decimal only where revenue is aggregated.
type Course struct {
	ID             string    `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Slug           string    `db:"slug" json:"slug"`
	Image          string    `db:"image" json:"image,omitempty"`
	Description    string    `db:"description" json:"description"`
	Overview       string    `db:"overview" json:"overview"`
	Price          string    `db:"price" json:"price"`
	DurationWeeks  int       `db:"duration_weeks" json:"duration_weeks"`
	LessonsCount   int       `db:"lessons_count" json:"lessons_count"`
	InstructorID   *string   `db:"instructor_id" json:"instructor_id,omitempty"`
	TrialAvailable bool      `db:"trial_available" json:"trial_available"`
	TrialDays      int       `db:"trial_days" json:"trial_days"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CourseSummary is a catalog row enriched with the instructor name.
type CourseSummary struct {
	Course
	InstructorName string `db:"instructor_name" json:"instructor_name,omitempty"`
}

// CourseDetail adds the curriculum tree and instructor card.
type CourseDetail struct {
	Course
	Instructor *InstructorPublic   `json:"instructor,omitempty"`
	Sections   []CurriculumSection `json:"sections"`
}

// CourseWithStats pairs a course with its enrollment count for the
// instructor portal.
type CourseWithStats struct {
	Course
	EnrollmentCount int `db:"enrollment_count" json:"enrollment_count"`
}

// InstructorCourseDetail is the owner's view of one course: curriculum
// plus enrollment stats and the per-course roster.
type InstructorCourseDetail struct {
	Course
	Sections         []CurriculumSection `json:"sections"`
	TotalEnrolled    int                 `json:"total_enrolled"`
	TrialEnrolled    int                 `json:"trial_enrolled"`
	PaidEnrolled     int                 `json:"paid_enrolled"`
	EstimatedRevenue string              `json:"estimated_revenue"`
	Roster           []EnrollmentDetail  `json:"roster"`
}

// CurriculumSection groups lessons within a course.
type CurriculumSection struct {
	ID          string   `db:"id" json:"id"`
	CourseID    string   `db:"course_id" json:"course_id"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description,omitempty"`
	Position    int      `db:"position" json:"position"`
	Lessons     []Lesson `json:"lessons"`
}

// CreateCourseRequest carries a new course plus its curriculum tree.
type CreateCourseRequest struct {
	Title          string                 `json:"title" validate:"required,max=200"`
	Image          string                 `json:"image"`
	Description    string                 `json:"description" validate:"required"`
	Overview       string                 `json:"overview"`
	Price          string                 `json:"price"`
	DurationWeeks  int                    `json:"duration_weeks" validate:"gte=0"`
	TrialAvailable bool                   `json:"trial_available"`
	TrialDays      int                    `json:"trial_days" validate:"gte=0"`
	Sections       []CreateSectionRequest `json:"sections" validate:"dive"`
}

// CreateSectionRequest is one curriculum section within a course payload.
type CreateSectionRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description"`
	Lessons     []CreateLessonRequest `json:"lessons" validate:"dive"`
}

// CreateLessonRequest is one lesson within a section payload.
type CreateLessonRequest struct {
	Title            string `json:"title" validate:"required,max=200"`
	Content          string `json:"content"`
	PreviewAvailable bool   `json:"preview_available"`
}

// Lesson is a single curriculum item.
type Lesson struct {
	ID               string `db:"id" json:"id"`
	SectionID        string `db:"section_id" json:"section_id"`
	Title            string `db:"title" json:"title"`
	Content          string `db:"content" json:"content,omitempty"`
	PreviewAvailable bool   `db:"preview_available" json:"preview_available"`
	Position         int    `db:"position" json:"position"`
}
