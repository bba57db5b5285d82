package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaalasociety/academy-api/internal/models"
)

type fakeContactStore struct {
	stored []models.ContactMessage
}

func (f *fakeContactStore) Create(_ context.Context, message *models.ContactMessage) error {
	f.stored = append(f.stored, *message)
	return nil
}

func (f *fakeContactStore) List(context.Context) ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

func TestContactSubmitStoresMessage(t *testing.T) {
	store := &fakeContactStore{}
	svc := NewContactService(store, nil, nil)

	message, err := svc.Submit(context.Background(), models.ContactMessageRequest{
		FullName: "Fatima R.",
		Email:    "fatima@example.com",
		Message:  "Do you offer weekend classes?",
	})

	require.NoError(t, err)
	assert.Equal(t, "fatima@example.com", message.Email)
	assert.False(t, message.CreatedAt.IsZero())
	require.Len(t, store.stored, 1)
}

func TestContactSubmitRejectsInvalidPayload(t *testing.T) {
	store := &fakeContactStore{}
	svc := NewContactService(store, nil, nil)

	_, err := svc.Submit(context.Background(), models.ContactMessageRequest{FullName: "No Email"})

	assert.Error(t, err)
	assert.Empty(t, store.stored)
}

func TestContactMessagesReturnsInbox(t *testing.T) {
	store := &fakeContactStore{stored: []models.ContactMessage{
		{ID: "m1", FullName: "Fatima R.", CreatedAt: time.Now().UTC()},
		{ID: "m2", FullName: "Yusuf K.", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}}
	svc := NewContactService(store, nil, nil)

	messages, err := svc.Messages(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
}
