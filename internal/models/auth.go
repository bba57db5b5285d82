package models

// Role identifies which credential store a session principal belongs to.
// A session carries exactly one principal, so establishing a session for
// one role structurally replaces the other.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Valid reports whether the role is one of the two known stores.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}

// Principal is an authenticated identity attached to a session.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// LoginRequest holds the unified login form fields. The identifier is a
// username or email for students and an email for instructors.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType Role   `json:"user_type" validate:"required"`
}

// LoginResponse returns the established principal.
type LoginResponse struct {
	Principal Principal `json:"principal"`
}

// SignupRequest creates a platform account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=150"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Country  string `json:"country" validate:"omitempty,max=100"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Note     string `json:"note"`
}

// UpdateProfileRequest carries editable platform account fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"omitempty,max=150"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Country  string `json:"country" form:"country" validate:"omitempty,max=100"`
	City     string `json:"city" form:"city" validate:"omitempty,max=100"`
}
