package models

import "time"

// Enrollment links a platform account to a course. Trial configuration is
// snapshotted from the course at creation time and never re-derived.
type Enrollment struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	CourseID     string     `db:"course_id" json:"course_id"`
	EnrolledAt   time.Time  `db:"enrolled_at" json:"enrolled_at"`
	IsTrial      bool       `db:"is_trial" json:"is_trial"`
	TrialStarted *time.Time `db:"trial_started" json:"trial_started,omitempty"`
}

// TrialExpired reports whether the trial window has elapsed. It is computed
// on read against the course's configured trial length and never persisted.
func (e *Enrollment) TrialExpired(trialDays int, now time.Time) bool {
	if !e.IsTrial || e.TrialStarted == nil {
		return false
	}
	return now.After(e.TrialStarted.Add(time.Duration(trialDays) * 24 * time.Hour))
}

// EnrollmentDetail enriches Enrollment with user and course info.
type EnrollmentDetail struct {
	Enrollment
	Username    string `db:"username" json:"username"`
	UserEmail   string `db:"user_email" json:"user_email"`
	CourseTitle string `db:"course_title" json:"course_title"`
	TrialDays   int    `db:"trial_days" json:"-"`
}

// EnrolledCourse is a my-courses row: the enrollment joined with its course
// plus the derived trial state.
type EnrolledCourse struct {
	Enrollment
	Course       Course `json:"course"`
	TrialExpired bool   `json:"trial_expired"`
}

// EnrollmentFilter provides filters for the instructor student roster.
type EnrollmentFilter struct {
	InstructorID string
	CourseID     string
	IsTrial      *bool
	Search       string
	Limit        int
}

// EnrollStatus is the outcome reported by the enroll endpoint. Both values
// are delivered with HTTP 200; a duplicate is a soft outcome, not an error.
type EnrollStatus string

const (
	EnrollStatusSuccess         EnrollStatus = "success"
	EnrollStatusAlreadyEnrolled EnrollStatus = "already_enrolled"
)

// EnrollResult is the wire body for the enroll endpoint.
type EnrollResult struct {
	Status  EnrollStatus `json:"status"`
	Message string       `json:"message"`
}
