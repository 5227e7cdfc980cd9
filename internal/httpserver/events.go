package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopsmart/internal/domain"
)

const snapshotEvent = "snapshot"

// listEventsHandler streams the list as server-sent events: the current
// snapshot first, then one per change. Only the latest pending snapshot is
// kept for a slow client.
func listEventsHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates := make(chan domain.ListSnapshot, 1)
		cancel := svc.Subscribe(func(snap domain.ListSnapshot) {
			select {
			case updates <- snap:
			default:
				select {
				case <-updates:
				default:
				}
				updates <- snap
			}
		})
		defer cancel()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)

		c.SSEvent(snapshotEvent, toListResponse(svc.Snapshot()))
		c.Writer.Flush()

		done := c.Request.Context().Done()
		for {
			select {
			case <-done:
				return
			case snap := <-updates:
				c.SSEvent(snapshotEvent, toListResponse(snap))
				c.Writer.Flush()
			}
		}
	}
}
