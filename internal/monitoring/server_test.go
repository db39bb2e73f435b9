package monitoring_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loket-backend/internal/models"
	"loket-backend/internal/monitoring"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertHubDeliversPublishedAlerts(t *testing.T) {
	hub := monitoring.NewAlertHub(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.PublishAlerts([]models.Alert{
		{ID: "a-1", AlertType: models.AlertLowCash, Severity: models.SeverityWarning},
		{ID: "a-2", AlertType: models.AlertMissingReports, Severity: models.SeverityInfo},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got []string
	for i := 0; i < 2; i++ {
		var a models.Alert
		require.NoError(t, conn.ReadJSON(&a))
		got = append(got, a.ID)
	}
	assert.Equal(t, []string{"a-1", "a-2"}, got)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestPublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := monitoring.NewAlertHub(logrus.New())
	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.PublishAlerts([]models.Alert{{ID: "x"}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PublishAlerts blocked with a full queue")
	}
}
