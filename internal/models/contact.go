package models

import "time"

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContactMessageRequest is the contact form payload.
type ContactMessageRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}
