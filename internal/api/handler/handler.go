package handler

import (
	"errors"
	"net/http"

	"voicebox/backend/internal/announcement"
	"voicebox/backend/internal/auth"
	"voicebox/backend/internal/complaint"
	"voicebox/backend/internal/contact"
	"voicebox/backend/internal/discussion"
	"voicebox/backend/internal/notify"
	"voicebox/backend/internal/petition"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/threadhub"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Auth          *auth.Service
	Complaints    *complaint.Service
	Discussion    *discussion.Service
	Petitions     *petition.Service
	Announcements *announcement.Service
	Contact       *contact.Service
	Hub           *threadhub.ManagerService
	Notifier      notify.Notifier
}

func NewHandler(
	authSvc *auth.Service,
	complaints *complaint.Service,
	disc *discussion.Service,
	petitions *petition.Service,
	announcements *announcement.Service,
	contactSvc *contact.Service,
	hub *threadhub.ManagerService,
	notifier notify.Notifier,
) *Handler {
	return &Handler{
		Auth:          authSvc,
		Complaints:    complaints,
		Discussion:    disc,
		Petitions:     petitions,
		Announcements: announcements,
		Contact:       contactSvc,
		Hub:           hub,
		Notifier:      notifier,
	}
}

// abortWithError maps service errors onto HTTP statuses. Validation
// failures are 400s, auth failures 401/403, missing ids 404, and a store
// outage 503; anything unrecognized is a 500.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrInvalidSignup),
		errors.Is(err, complaint.ErrInvalidDraft),
		errors.Is(err, complaint.ErrInvalidStatus),
		errors.Is(err, discussion.ErrEmptyComment),
		errors.Is(err, petition.ErrInvalidDraft),
		errors.Is(err, petition.ErrGoalTooLow),
		errors.Is(err, announcement.ErrInvalidDraft),
		errors.Is(err, contact.ErrInvalidMessage):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrAccountPending), errors.Is(err, auth.ErrBadAccessKey):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
