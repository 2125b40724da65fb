package contact_test

import (
	"testing"

	"voicebox/backend/internal/contact"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreate_StartsUnread(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := contact.NewService(storageMock)
	storageMock.On("CreateContactMessage", mock.AnythingOfType("*models.ContactMessage")).Return(nil)

	msg, err := svc.Create("Ravi", "Kumar", "ravi@example.com", "How do I reset my password?")

	require.NoError(t, err)
	assert.Equal(t, models.ContactUnread, msg.Status)
}

func TestCreate_Validation(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := contact.NewService(storageMock)

	_, err := svc.Create("", "Kumar", "ravi@example.com", "hello")
	assert.ErrorIs(t, err, contact.ErrInvalidMessage)

	_, err = svc.Create("Ravi", "", "ravi@example.com", "  ")
	assert.ErrorIs(t, err, contact.ErrInvalidMessage)
	storageMock.AssertNotCalled(t, "CreateContactMessage", mock.Anything)
}
