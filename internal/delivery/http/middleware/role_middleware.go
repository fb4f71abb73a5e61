package middleware

import (
	"net/http"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/response"
)

// RoleMiddleware gates pages on the session role. Unlike an API this
// is a browser surface, so a denied request is sent back to the home
// page with a message instead of a bare status code.
type RoleMiddleware struct {
	sessions *session.Manager
}

func NewRoleMiddleware(sessions *session.Manager) *RoleMiddleware {
	return &RoleMiddleware{sessions: sessions}
}

// RequireRole allows the request through when the session holds any of
// the given roles.
func (m *RoleMiddleware) RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())

			allowed := false
			for _, role := range allowedRoles {
				if sess.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				m.sessions.SetFlash(w, "Please log in to access that page.")
				response.Found(w, r, "/")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleAdmin)(next)
}

func (m *RoleMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleDoctor)(next)
}

func (m *RoleMiddleware) RequireLoggedPatient(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleLoggedPatient)(next)
}
