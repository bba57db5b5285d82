package models

import "time"

// Instructor represents an instructor account. Instructors are seeded
// administratively and authenticate against their own credential store.
type Instructor struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Name         string     `db:"name" json:"name"`
	Title        string     `db:"title" json:"title"`
	Bio          string     `db:"bio" json:"bio,omitempty"`
	Image        string     `db:"image" json:"image,omitempty"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// InstructorPublic is the catalog-facing instructor card.
type InstructorPublic struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Title string `db:"title" json:"title"`
	Bio   string `db:"bio" json:"bio,omitempty"`
	Image string `db:"image" json:"image,omitempty"`
}

// InstructorDashboard aggregates the figures shown on the portal landing
// page. Revenue is an estimate: course prices are free-form text and rows
// that do not parse as a number contribute zero.
type InstructorDashboard struct {
	TotalCourses      int                `json:"total_courses"`
	TotalStudents     int                `json:"total_students"`
	TrialStudents     int                `json:"trial_students"`
	PaidStudents      int                `json:"paid_students"`
	EstimatedRevenue  string             `json:"estimated_revenue"`
	TopCourses        []CourseWithStats  `json:"top_courses"`
	RecentEnrollments []EnrollmentDetail `json:"recent_enrollments"`
}

// Public projects the instructor onto its catalog-facing card.
func (i *Instructor) Public() InstructorPublic {
	return InstructorPublic{ID: i.ID, Name: i.Name, Title: i.Title, Bio: i.Bio, Image: i.Image}
}

// UpdateInstructorProfileRequest carries editable instructor fields.
type UpdateInstructorProfileRequest struct {
	Name  string `json:"name" form:"name" validate:"omitempty,max=100"`
	Title string `json:"title" form:"title" validate:"omitempty,max=100"`
	Bio   string `json:"bio" form:"bio"`
}
