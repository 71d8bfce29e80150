package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/5hjiwoo/foodrecommend/logger"
	"github.com/5hjiwoo/foodrecommend/services"
)

const pingInterval = 25 * time.Second

type RealtimeController struct {
	RT       *services.RealtimeHub
	upgrader websocket.Upgrader
}

// NewRealtimeController accepts websocket upgrades from allowedOrigins; an
// empty list accepts any origin.
func NewRealtimeController(rt *services.RealtimeHub, allowedOrigins []string) *RealtimeController {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &RealtimeController{
		RT: rt,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowed) == 0 || origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// GET /ws/meals
func (rc *RealtimeController) MealsWS(c *gin.Context) {
	uid := currentUserID(c)

	conn, err := rc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Debug("Websocket upgrade failed", "error", err)
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer func() {
		close(done)
		rc.RT.Unregister(cl)
	}()

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Ping(); err != nil {
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
