package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/TiaanKleinhans/custom-golf-events/internal/usecase"
)

const streamKeepAliveInterval = 25 * time.Second

// StreamEventChanges is the SSE feed behind live standings. Clients get a
// payload-free "change" signal whenever any group is written and are
// expected to refetch the leaderboard; the server never pushes deltas.
func (h *Handler) StreamEventChanges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamEventChanges")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if _, err := h.eventService.GetEvent(ctx, eventID); err != nil {
		writeError(ctx, w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: response writer does not support streaming", usecase.ErrDependencyUnavailable))
		return
	}
	if h.hub == nil {
		writeError(ctx, w, fmt.Errorf("%w: change feed is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Coalesce bursts: one pending signal is enough, the client refetches
	// the full standings either way.
	signal := make(chan struct{}, 1)
	unsubscribe := h.hub.SubscribeAll(func() {
		select {
		case signal <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	fmt.Fprintf(w, "event: ready\ndata: {\"event_id\":%q}\n\n", eventID)
	flusher.Flush()

	keepAlive := time.NewTicker(streamKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-signal:
			fmt.Fprint(w, "event: change\ndata: {}\n\n")
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
