package handler

import (
	"net/http"

	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/render"
	"clinic-portal/internal/session"

	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	sessions *session.Manager
	renderer *render.Renderer
	log      *logrus.Logger
}

func NewHomeHandler(sessions *session.Manager, renderer *render.Renderer, log *logrus.Logger) *HomeHandler {
	return &HomeHandler{
		sessions: sessions,
		renderer: renderer,
		log:      log,
	}
}

// Show renders the role-chooser page. Navigating to the root always
// discards any existing session.
func (h *HomeHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess.ID != "" {
		if err := h.sessions.Logout(r.Context(), w, sess); err != nil {
			h.log.Warnf("Failed to clear session on home page: %v", err)
		}
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.HomeView{
		Page: render.NewPage("Welcome", entity.Anonymous(), flash),
	}
	h.renderer.Render(w, "home", view)
}
