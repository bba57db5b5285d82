package models

import "time"

// Service is a marketing offering rendered on the home and services pages.
type Service struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Testimonial is a student quote shown on marketing pages.
type Testimonial struct {
	ID        string    `db:"id" json:"id"`
	Author    string    `db:"author" json:"author"`
	Role      string    `db:"role" json:"role,omitempty"`
	Quote     string    `db:"quote" json:"quote"`
	Image     string    `db:"image" json:"image,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GalleryImage is a photo shown in the gallery strip.
type GalleryImage struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title,omitempty"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Video is an embedded recitation or lecture video.
type Video struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// VideoFilter filters the video listing.
type VideoFilter struct {
	Title    string
	Page     int
	PageSize int
}
