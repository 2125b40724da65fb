package models_test

import (
	"testing"

	"voicebox/backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// TestBeforeCreate_GeneratesUUIDs verifies that every entity gets a valid
// UUID assigned on create when none is set.
func TestBeforeCreate_GeneratesUUIDs(t *testing.T) {
	user := &models.User{FullName: "Priya Sharma", Email: "priya@example.com"}
	complaint := &models.Complaint{Title: "Broken AC"}
	comment := &models.Comment{Text: "Any update?"}
	petition := &models.Petition{Title: "Extend library hours"}

	assert.NoError(t, user.BeforeCreate(nil))
	assert.NoError(t, complaint.BeforeCreate(nil))
	assert.NoError(t, comment.BeforeCreate(nil))
	assert.NoError(t, petition.BeforeCreate(nil))

	for _, id := range []string{user.ID, complaint.ID, comment.ID, petition.ID} {
		parsed, err := uuid.Parse(id)
		assert.NoError(t, err, "ID must be a valid UUID string")
		assert.NotEqual(t, uuid.Nil, parsed)
	}
}

// TestBeforeCreate_PreservesExistingID verifies the hook does not clobber
// a pre-assigned id.
func TestBeforeCreate_PreservesExistingID(t *testing.T) {
	existing := uuid.New().String()
	complaint := &models.Complaint{ID: existing, Title: "Broken AC"}

	assert.NoError(t, complaint.BeforeCreate(nil))
	assert.Equal(t, existing, complaint.ID)
}

// TestPetitionSupportersArray verifies the text[] column type holds the
// supporters set.
func TestPetitionSupportersArray(t *testing.T) {
	petition := &models.Petition{
		Title:             "Better mess food",
		Target:            25,
		CurrentSupporters: 2,
		Supporters:        pq.StringArray{"u1", "u2"},
	}

	assert.NoError(t, petition.BeforeCreate(nil))
	assert.Len(t, petition.Supporters, 2)
	assert.Contains(t, petition.Supporters, "u1")
	assert.Equal(t, petition.CurrentSupporters, len(petition.Supporters))
}
