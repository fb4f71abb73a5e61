package middleware

import (
	"context"
	"errors"
	"net/http"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

// ExpiredSessionMessage is the warning shown after a forced logout.
const ExpiredSessionMessage = "Session expired or invalid login. Please log in again."

// SessionMiddleware resolves the session once per request and makes it
// available through the context. An expired session is cleared,
// flashed and redirected home here, exactly once, before any handler
// runs.
type SessionMiddleware struct {
	sessions *session.Manager
	log      *logrus.Logger
}

func NewSessionMiddleware(sessions *session.Manager, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		log:      log,
	}
}

func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.sessions.Resolve(r)
		if errors.Is(err, session.ErrExpired) {
			m.log.Warnf("Expired session for role %s, forcing logout", sess.Role)
			if err := m.sessions.Logout(r.Context(), w, sess); err != nil {
				m.log.Warnf("Failed to clear expired session: %v", err)
			}
			m.sessions.SetFlash(w, ExpiredSessionMessage)
			response.Found(w, r, "/")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the resolved session, or the anonymous
// session when the middleware did not run.
func SessionFromContext(ctx context.Context) entity.Session {
	if sess, ok := ctx.Value(SessionKey).(entity.Session); ok {
		return sess
	}
	return entity.Anonymous()
}
