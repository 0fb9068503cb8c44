package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/view"
	"github.com/gin-gonic/gin"
)

// stream pushes the board to the client with Server-Sent Events: the current
// board first, then one update per store change.
func (h *Handler) stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	// Register before reading the initial board so no change slips between them.
	updates := h.broker.Register()
	defer h.broker.Unregister(updates)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering
	c.Status(http.StatusOK)

	writeEvent(c, "initial", h.svc.Board(c.Request.Context()))
	flusher.Flush()

	ctx := c.Request.Context()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			writeEvent(c, "update", view.NewBoard(snapshot))
			flusher.Flush()
		}
	}
}

func writeEvent(c *gin.Context, event string, board view.Board) {
	data, _ := json.Marshal(gin.H{"board": board})
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(data))
}
