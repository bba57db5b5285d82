package models

import "time"

// UserRole classifies platform accounts.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAdmin   UserRole = "ADMIN"
)

// User represents a platform account (students and admins) stored in the
// users table. Instructor credentials live in their own table.
type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Phone        string     `db:"phone" json:"phone,omitempty"`
	Country      string     `db:"country" json:"country,omitempty"`
	City         string     `db:"city" json:"city,omitempty"`
	Note         string     `db:"note" json:"note,omitempty"`
	ProfileImage string     `db:"profile_image" json:"profile_image,omitempty"`
	Role         UserRole   `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// UserProfile is the subset of User returned to the account owner.
type UserProfile struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Phone        string   `json:"phone,omitempty"`
	Country      string   `json:"country,omitempty"`
	City         string   `json:"city,omitempty"`
	ProfileImage string   `json:"profile_image,omitempty"`
	Role         UserRole `json:"role"`
}

// Profile maps the account to its public profile representation.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Country:      u.Country,
		City:         u.City,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
	}
}
