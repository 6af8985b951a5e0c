package homepage

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/logging"
)

const (
	eventBufferSize   = 64
	keepAliveInterval = 25 * time.Second
)

// EventHandlers streams settings changes as server-sent events.
type EventHandlers struct {
	store *settings.Store
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(store *settings.Store) *EventHandlers {
	return &EventHandlers{store: store}
}

type fieldEvent struct {
	key  string
	data []byte
}

// HandleStream sends an initial "state" event, then one event per changed
// field named after its storage key. Events are dropped for slow clients.
func (h *EventHandlers) HandleStream(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, fmt.Errorf("streaming not supported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events := make(chan fieldEvent, eventBufferSize)
	unsubscribe := h.store.Watch(func(key string, value any) {
		data, err := json.Marshal(value)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to encode settings event")
			return
		}
		select {
		case events <- fieldEvent{key: key, data: data}:
		default:
			log.Warn().Str("key", key).Msg("event stream client too slow, dropping event")
		}
	})
	defer unsubscribe()

	snapshot, err := json.Marshal(h.store.Snapshot())
	if err != nil {
		log.Error().Err(err).Msg("failed to encode settings snapshot")
		return
	}
	writeEvent(w, "state", snapshot)
	flusher.Flush()

	log.Debug().Msg("event stream opened")
	defer log.Debug().Msg("event stream closed")

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			writeEvent(w, ev.key, ev.data)
			flusher.Flush()
		case <-ticker.C:
			_, _ = fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data []byte) {
	_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}
