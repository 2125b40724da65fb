package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voicebox/backend/internal/api/handler"
	"voicebox/backend/internal/complaint"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/notify"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/storage/storagetest"
	"voicebox/backend/internal/threadhub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSocketServer(t *testing.T, storageMock *storagetest.MockStorage) (*httptest.Server, *threadhub.ManagerService) {
	t.Helper()

	events := make(chan models.ThreadEvent)
	storageMock.On("SubscribeThreadEvents", mock.Anything).Return((<-chan models.ThreadEvent)(events), nil)

	hub := threadhub.NewManagerService(storageMock)
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHandler(nil, complaint.NewService(storageMock), nil, nil, nil, nil, hub, notify.Noop{})
	r.GET("/ws/complaints/:id", h.ServeThreadSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dialThread(t *testing.T, srv *httptest.Server, complaintID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/complaints/" + complaintID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestServeThreadSocket_SnapshotThenLiveRefresh(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{{ID: "m1", Text: "hello"}}, nil)

	srv, hub := newSocketServer(t, storageMock)
	conn := dialThread(t, srv, "c1")
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update models.ThreadUpdate
	require.NoError(t, conn.ReadJSON(&update), "current snapshot arrives on connect")
	assert.Equal(t, "c1", update.ComplaintID)
	assert.Len(t, update.Comments, 1)

	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "comment"}
	require.NoError(t, conn.ReadJSON(&update), "thread event triggers a refreshed snapshot")
	assert.Equal(t, models.StatusPending, update.Status)
}

// A peer that vanishes right after the upgrade must not wedge the hub:
// later subscribers of the same thread still get snapshots and refreshes.
func TestServeThreadSocket_SurvivesImmediateDisconnect(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	storageMock.On("GetComplaintByID", "c1").Return(&models.Complaint{ID: "c1", Status: models.StatusPending}, nil)
	storageMock.On("GetThread", "c1").Return([]models.Comment{}, nil)

	srv, hub := newSocketServer(t, storageMock)

	ghost := dialThread(t, srv, "c1")
	ghost.Close()

	conn := dialThread(t, srv, "c1")
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update models.ThreadUpdate
	require.NoError(t, conn.ReadJSON(&update))

	hub.EventCh <- models.ThreadEvent{ComplaintID: "c1", Kind: "status"}
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "c1", update.ComplaintID)
}

func TestServeThreadSocket_UnknownComplaintRejectsBeforeUpgrade(t *testing.T) {
	storageMock := new(storagetest.MockStorage)
	storageMock.On("GetComplaintByID", "missing").Return(nil, storage.ErrNotFound)

	srv, _ := newSocketServer(t, storageMock)

	resp, err := http.Get(srv.URL + "/ws/complaints/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
