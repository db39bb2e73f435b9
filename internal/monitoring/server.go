package monitoring

import (
	"context"
	"net/http"
	"sync"
	"time"

	"loket-backend/internal/config"
	"loket-backend/internal/health"
	"loket-backend/internal/models"
	"loket-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AlertHub fans generated alerts out to connected websocket clients.
type AlertHub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan models.Alert
	logger     *logrus.Logger
}

func NewAlertHub(logger *logrus.Logger) *AlertHub {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &AlertHub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan models.Alert, 256),
		logger:    logger,
	}
}

// Run delivers broadcast alerts until ctx is cancelled, then closes every
// client.
func (h *AlertHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.clientsMux.Lock()
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.clientsMux.Unlock()
			return
		case alert := <-h.broadcast:
			h.send(alert)
		}
	}
}

func (h *AlertHub) send(alert models.Alert) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteJSON(alert); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// PublishAlerts queues alerts for delivery. It never blocks the caller; when
// the queue is full the alert is dropped and only stays visible through the
// alerts API.
func (h *AlertHub) PublishAlerts(alerts []models.Alert) {
	for _, a := range alerts {
		select {
		case h.broadcast <- a:
		default:
			h.logger.WithFields(logrus.Fields{"module": "monitoring", "alert_id": a.ID}).Warn("alert stream queue full, dropping alert")
		}
	}
}

// GET /api/alerts/stream
func (h *AlertHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithField("module", "monitoring").WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	// Clients never send anything meaningful; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.clientsMux.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.clientsMux.Unlock()
			return
		}
	}
}

func (h *AlertHub) ClientCount() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}

// WatchHealth publishes a critical system alert each time the database
// goes from reachable to unreachable.
func (h *AlertHub) WatchHealth(ctx context.Context, checker *health.HealthChecker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	wasDown := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := checker.CheckBasic()
			down := status.Database.Status == "unhealthy"
			if down && !wasDown {
				h.PublishAlerts([]models.Alert{databaseDownAlert(timeutil.Now())})
			}
			wasDown = down
		}
	}
}

func databaseDownAlert(now time.Time) models.Alert {
	return models.Alert{
		ID:          uuid.NewString(),
		AlertType:   models.AlertSystem,
		Severity:    models.SeverityCritical,
		Title:       "Database unreachable",
		Message:     "The ledger database did not answer the health check",
		TriggeredAt: now,
	}
}
