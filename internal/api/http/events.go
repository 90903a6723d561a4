package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"taam-menu/internal/domain"
)

// streamEvents fans bus events out to the dashboard over SSE. The handler
// subscribes on connect and the deferred unsubscribes guarantee cleanup on
// disconnect, so no handler outlives its stream.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	type envelope struct {
		name   string
		detail domain.EventDetail
	}
	// Buffered so a slow client cannot stall bus delivery; overflowing
	// events are dropped, which matches the bus's fire-and-forget contract.
	deliveries := make(chan envelope, 16)

	forward := func(name string) func(domain.EventDetail) {
		return func(detail domain.EventDetail) {
			select {
			case deliveries <- envelope{name: name, detail: detail}:
			default:
			}
		}
	}

	for _, name := range []string{
		domain.EventRestaurantUpdated,
		domain.EventSubscriptionUpdated,
		domain.EventDashboardNavigate,
	} {
		unsubscribe := h.Events.Subscribe(name, forward(name))
		defer unsubscribe()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case delivery := <-deliveries:
			payload, _ := json.Marshal(delivery.detail)
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", delivery.name, payload)
			flusher.Flush()
		}
	}
}
