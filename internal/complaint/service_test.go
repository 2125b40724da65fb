package complaint_test

import (
	"testing"

	"voicebox/backend/internal/complaint"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDraft() complaint.Draft {
	return complaint.Draft{
		Title:       "Broken AC",
		Category:    "Hostel",
		Description: "The AC in block C has been broken for a week.",
		Priority:    "High",
	}
}

func student() *models.User {
	return &models.User{ID: "u1", FullName: "Priya Sharma", Role: models.RoleStudent, CollegeName: "NIT"}
}

func TestSubmit_StoresPendingComplaint(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)

	filed, err := svc.Submit(validDraft(), student())

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, filed.Status)
	assert.Equal(t, "u1", filed.AuthorID)
	assert.Equal(t, "Priya Sharma", filed.AuthorName)
	assert.Equal(t, "NIT", filed.CollegeName)
	storageMock.AssertCalled(t, "CreateComplaint", mock.AnythingOfType("*models.Complaint"))
}

func TestSubmit_AnonymousHidesAuthorName(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)

	draft := validDraft()
	draft.IsAnonymous = true
	filed, err := svc.Submit(draft, student())

	require.NoError(t, err)
	assert.Equal(t, "Anonymous", filed.AuthorName)
	assert.True(t, filed.IsAnonymous)
}

func TestSubmit_RejectsInvalidDrafts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*complaint.Draft)
	}{
		{"missing title", func(d *complaint.Draft) { d.Title = "  " }},
		{"missing description", func(d *complaint.Draft) { d.Description = "" }},
		{"unknown category", func(d *complaint.Draft) { d.Category = "Parking" }},
		{"unknown priority", func(d *complaint.Draft) { d.Priority = "Urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageMock := new(storagetest.MockStorage)
			svc := complaint.NewService(storageMock)

			draft := validDraft()
			tt.mutate(&draft)
			_, err := svc.Submit(draft, student())

			assert.ErrorIs(t, err, complaint.ErrInvalidDraft)
			storageMock.AssertNotCalled(t, "CreateComplaint", mock.Anything)
		})
	}
}

func TestListAll_SearchMatchesTitleAndID(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("ListComplaints", "").Return([]models.Complaint{
		{ID: "abc-123", Title: "Broken AC"},
		{ID: "def-456", Title: "Wifi outage"},
		{ID: "ghi-789", Title: "Mess food quality"},
	}, nil)

	byTitle, err := svc.ListAll(complaint.ListFilter{Search: "broken"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "abc-123", byTitle[0].ID)

	byID, err := svc.ListAll(complaint.ListFilter{Search: "DEF-456"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Wifi outage", byID[0].Title)
}

func TestListAll_StatusAllMeansUnfiltered(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("ListComplaints", "").Return([]models.Complaint{}, nil)

	_, err := svc.ListAll(complaint.ListFilter{Status: "All"})

	require.NoError(t, err)
	storageMock.AssertCalled(t, "ListComplaints", "")
}

func TestSetStatus_PublishesThreadEvent(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("UpdateComplaintStatus", "c1", models.StatusResolved).Return(nil)
	storageMock.On("PublishThreadEvent", models.ThreadEvent{ComplaintID: "c1", Kind: "status"}).Return(nil)

	err := svc.SetStatus("c1", models.StatusResolved)

	require.NoError(t, err)
	storageMock.AssertExpectations(t)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)

	err := svc.SetStatus("c1", "Escalated")

	assert.ErrorIs(t, err, complaint.ErrInvalidStatus)
	storageMock.AssertNotCalled(t, "UpdateComplaintStatus", mock.Anything, mock.Anything)
}

func TestSetStatus_PropagatesNotFound(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	svc := complaint.NewService(storageMock)
	storageMock.On("UpdateComplaintStatus", "missing", models.StatusResolved).Return(storage.ErrNotFound)

	err := svc.SetStatus("missing", models.StatusResolved)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}
