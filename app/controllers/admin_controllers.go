package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
	"github.com/shashiranjanraj/goldenaura/pkg/sse"
	"github.com/shashiranjanraj/goldenaura/pkg/ws"
)

type AdminController struct {
	admin *services.AdminService
	feed  *ws.Hub
}

func NewAdminController(feed *ws.Hub) *AdminController {
	return &AdminController{
		admin: services.NewAdminService(),
		feed:  feed,
	}
}

// Stats returns the dashboard overview.
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.admin.Stats()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, stats)
}

// OrderFeed upgrades to a websocket that streams order events to the
// admin dashboard as they happen.
func (c *AdminController) OrderFeed(w http.ResponseWriter, r *http.Request) {
	c.feed.Serve(w, r)
}

// OrderStream serves the same order events over SSE, for dashboards
// behind proxies that block websocket upgrades.
func (c *AdminController) OrderStream(w http.ResponseWriter, r *http.Request) {
	stream := sse.New(w, r)
	if stream == nil {
		return
	}

	ch := c.feed.Subscribe()
	defer c.feed.Unsubscribe(ch)

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			stream.Comment("ping")
		case msg, ok := <-ch:
			if !ok {
				return
			}
			stream.SendRaw(string(msg))
			if stream.IsClosed() {
				return
			}
		}
	}
}
