package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zaalasociety/academy-api/internal/models"
)

// ContactRepository provides database access for contact form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create persists a contact message.
func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO contact_messages (id, full_name, email, message, created_at) VALUES (:id, :full_name, :email, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// List returns contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `SELECT id, full_name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`
	var messages []models.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}
