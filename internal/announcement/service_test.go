package announcement_test

import (
	"testing"

	"voicebox/backend/internal/announcement"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPost_StoresAnnouncement(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := announcement.NewService(storageMock)
	storageMock.On("CreateAnnouncement", mock.AnythingOfType("*models.Announcement")).Return(nil)

	posted, err := svc.Post("Exam schedule", "Mid-terms start on the 12th.", models.AnnouncementHigh, "Dr. Rao")

	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementHigh, posted.Priority)
	assert.Equal(t, "Dr. Rao", posted.CreatedBy)
}

func TestPost_DefaultsAuthorToAdmin(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := announcement.NewService(storageMock)
	storageMock.On("CreateAnnouncement", mock.AnythingOfType("*models.Announcement")).Return(nil)

	posted, err := svc.Post("Notice", "Water supply interrupted tomorrow.", models.AnnouncementNormal, "")

	require.NoError(t, err)
	assert.Equal(t, "Admin", posted.CreatedBy)
}

func TestPost_Validation(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := announcement.NewService(storageMock)

	_, err := svc.Post("", "body", models.AnnouncementNormal, "x")
	assert.ErrorIs(t, err, announcement.ErrInvalidDraft)

	_, err = svc.Post("title", "body", "Critical", "x")
	assert.ErrorIs(t, err, announcement.ErrInvalidDraft)
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := announcement.NewService(storageMock)
	storageMock.On("DeleteAnnouncement", "missing").Return(storage.ErrNotFound)

	assert.ErrorIs(t, svc.Delete("missing"), storage.ErrNotFound)
}
