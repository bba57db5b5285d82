package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

type contactStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// ContactService records contact form submissions and serves the staff
// inbox.
type ContactService struct {
	messages  contactStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs a ContactService instance.
func NewContactService(messages contactStore, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{messages: messages, validator: validate, logger: logger}
}

// Submit validates and stores a contact message.
func (s *ContactService) Submit(ctx context.Context, req models.ContactMessageRequest) (*models.ContactMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid contact payload")
	}

	message := &models.ContactMessage{
		FullName:  req.FullName,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store message")
	}

	s.logger.Info("contact message received", zap.String("email", message.Email))
	return message, nil
}

// Messages returns all submissions, newest first.
func (s *ContactService) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return messages, nil
}
