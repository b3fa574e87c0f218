package ws

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/info-graph/info-graph-task/pkg/resp"
	"github.com/info-graph/info-graph-task/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StatusFeed pushes a restaurant's status report over a WebSocket,
// recomputed once per interval — the cadence the browser client refreshes
// its clock at. One goroutine per connection; there is no shared hub
// because every subscriber gets the same per-restaurant snapshot.
type StatusFeed struct {
	Service  *services.StatusService
	Interval time.Duration
}

func NewStatusFeed(service *services.StatusService) *StatusFeed {
	return &StatusFeed{Service: service, Interval: time.Minute}
}

func (f *StatusFeed) Handle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	// Resolve the restaurant before upgrading so unknown ids get a
	// plain 404 instead of a dropped socket.
	report, err := f.Service.Report(uint(id), time.Now())
	if err != nil {
		resp.Error(c, err, "Failed to compute restaurant status.")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	go f.writeLoop(conn, uint(id), report)
}

func (f *StatusFeed) writeLoop(conn *websocket.Conn, id uint, first *services.StatusReport) {
	defer conn.Close()

	if err := conn.WriteJSON(first); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			report, err := f.Service.Report(id, time.Now())
			if err != nil {
				// Restaurant deleted mid-subscription or data gone bad.
				log.Printf("ws status report error: %v", err)
				return
			}
			if err := conn.WriteJSON(report); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}
}
