// Package handler holds the per-page controllers. Each one composes
// the session manager, the backend client and the renderer: fetch on
// load, re-fetch on filter change, mutate on form post, and repaint
// the whole page from the response.
package handler

import (
	"net/http"

	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

// forceLogout handles a backend token rejection: the session is no
// longer valid, so it is destroyed and the user sent home with the
// expiry warning.
func forceLogout(w http.ResponseWriter, r *http.Request, sessions *session.Manager, log *logrus.Logger) {
	sess := middleware.SessionFromContext(r.Context())
	if err := sessions.Logout(r.Context(), w, sess); err != nil {
		log.Warnf("Failed to clear rejected session: %v", err)
	}
	sessions.SetFlash(w, middleware.ExpiredSessionMessage)
	response.SeeOther(w, r, "/")
}
