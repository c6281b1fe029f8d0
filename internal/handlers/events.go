package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/metrics"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/sse"
)

// eventBuffer is how many events may queue for a slow client before new
// ones are dropped.
const eventBuffer = 32

// Events streams the session's page events until the client goes away or
// the session is closed. Heartbeats also keep the session from being swept
// as idle while the page is open.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) error {
	ctrl := h.session(w, r)

	sw := sse.NewWriter(w)
	if !sw.CanFlush() {
		return apperror.ErrStreamingUnavail
	}
	if err := sw.Start(); err != nil {
		return err
	}
	defer sw.Close()

	connID := uuid.NewString()
	log := h.log.With(slog.String("session_id", ctrl.ID()), slog.String("connection_id", connID))

	events := make(chan page.Event, eventBuffer)
	unsubscribe := ctrl.Subscribe(func(ev page.Event) {
		select {
		case events <- ev:
		default:
			log.Warn("event dropped for slow client", slog.String("event", ev.Kind))
		}
	})
	defer unsubscribe()

	metrics.EventStreams.Inc()
	defer metrics.EventStreams.Dec()

	if err := sw.WriteEvent(sse.EventConnected, sse.ConnectedEvent{ConnectionID: connID, SessionID: ctrl.ID()}); err != nil {
		log.Debug("event stream closed before connect", logger.Error(err))
		return nil
	}
	log.Debug("event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug("event stream closed by client")
			return nil

		case <-ctrl.Done():
			log.Debug("session closed, ending event stream")
			return nil

		case ev := <-events:
			if err := sw.WriteEvent(ev.Kind, ev.Data); err != nil {
				log.Debug("event write failed", logger.Error(err))
				return nil
			}

		case t := <-ticker.C:
			if !h.store.Touch(ctrl.ID()) {
				log.Debug("session evicted, ending event stream")
				return nil
			}
			if err := sw.WriteEvent(sse.EventHeartbeat, sse.NewHeartbeatEvent(t)); err != nil {
				return nil
			}
		}
	}
}
