// Package handlers serves the landing page and the page API that drives a
// visitor's session: navigation, the analysis demo and the event stream.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
)

const defaultHeartbeat = 30 * time.Second

// Handler holds what every page route needs.
type Handler struct {
	store    *page.Store
	validate *validator.Validate
	log      *slog.Logger

	cookieName    string
	cookieSecure  bool
	cookieMaxAge  time.Duration
	maxTextLength int
	heartbeat     time.Duration
}

func NewHandler(store *page.Store, cfg *config.Config, log *slog.Logger) *Handler {
	heartbeat := cfg.Events.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &Handler{
		store:         store,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		log:           log.With(logger.Scope("handlers")),
		cookieName:    cfg.Session.CookieName,
		cookieSecure:  cfg.Session.CookieSecure,
		cookieMaxAge:  cfg.Session.IdleTTL,
		maxTextLength: cfg.Analysis.MaxTextLength,
		heartbeat:     heartbeat,
	}
}

// session returns the caller's controller, starting a new session and
// setting the cookie when the request carries none or an expired one. It
// must run before anything is written to w.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *page.Controller {
	var id string
	if c, err := r.Cookie(h.cookieName); err == nil {
		id = c.Value
	} else if !errors.Is(err, http.ErrNoCookie) {
		h.log.Debug("unreadable session cookie", logger.Error(err))
	}

	ctrl, created := h.store.Resolve(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookieName,
			Value:    ctrl.ID(),
			Path:     "/",
			MaxAge:   int(h.cookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		h.log.Debug("session started", slog.String("session_id", ctrl.ID()))
	}
	return ctrl
}
