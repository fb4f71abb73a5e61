package session

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"clinic-portal/config"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrExpired marks a session record holding an authenticated role
// without its token. The caller must clear the cookie, warn the user
// and redirect to the home page.
var ErrExpired = errors.New("session expired or invalid")

// Manager is the single accessor and mutator of session state. All
// role transitions go through it so the role/token invariant is
// enforced in one place.
type Manager struct {
	store      Store
	signer     *jwt.CookieSigner
	log        *logrus.Logger
	cookieName string
	secure     bool
}

func NewManager(cfg config.SessionConfig, store Store, signer *jwt.CookieSigner, log *logrus.Logger) *Manager {
	return &Manager{
		store:      store,
		signer:     signer,
		log:        log,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
	}
}

// Resolve reads the request's session. A missing or unverifiable
// cookie and a missing record both resolve to the anonymous session.
// A record violating the token invariant is destroyed and reported as
// ErrExpired together with the stale session.
func (m *Manager) Resolve(r *http.Request) (entity.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return entity.Anonymous(), nil
	}

	id, err := m.signer.Verify(cookie.Value)
	if err != nil {
		return entity.Anonymous(), nil
	}

	sess, err := m.store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.log.Warnf("Failed to load session %s: %v", id, err)
		}
		return entity.Anonymous(), nil
	}

	if sess.Expired() {
		if err := m.store.Delete(r.Context(), id); err != nil {
			m.log.Warnf("Failed to delete expired session %s: %v", id, err)
		}
		return sess, ErrExpired
	}

	return sess, nil
}

// Login creates a session for an authenticated role and sets the
// signed cookie. The token invariant is checked up front: an
// authenticated role cannot be stored without a token.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, role entity.Role, token string) (entity.Session, error) {
	sess := entity.Session{
		ID:    uuid.NewString(),
		Role:  role,
		Token: token,
	}
	if sess.Expired() {
		return entity.Session{}, ErrExpired
	}

	if err := m.store.Put(ctx, sess); err != nil {
		return entity.Session{}, err
	}
	if err := m.setCookie(w, sess.ID); err != nil {
		return entity.Session{}, err
	}
	return sess, nil
}

// BrowseAsPatient starts an unauthenticated browsing session with the
// patient role, the state behind the public patient dashboard.
func (m *Manager) BrowseAsPatient(ctx context.Context, w http.ResponseWriter) (entity.Session, error) {
	sess := entity.Session{
		ID:   uuid.NewString(),
		Role: entity.RolePatient,
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return entity.Session{}, err
	}
	if err := m.setCookie(w, sess.ID); err != nil {
		return entity.Session{}, err
	}
	return sess, nil
}

// Logout destroys the session record and clears the cookie, returning
// the browser to the anonymous state.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, sess entity.Session) error {
	m.clearCookie(w)
	if sess.ID == "" {
		return nil
	}
	return m.store.Delete(ctx, sess.ID)
}

// DowngradeToPatient clears the token but keeps the session as an
// unauthenticated patient, the "log out but keep browsing" transition.
func (m *Manager) DowngradeToPatient(ctx context.Context, sess entity.Session) (entity.Session, error) {
	if sess.ID == "" {
		return entity.Anonymous(), nil
	}
	sess.Role = entity.RolePatient
	sess.Token = ""
	if err := m.store.Put(ctx, sess); err != nil {
		return entity.Session{}, err
	}
	return sess, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, sessionID string) error {
	value, err := m.signer.Sign(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.signer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash messages are one-shot banners carried in their own cookie so
// they survive the post-redirect-get hop, including for sessions that
// were just destroyed.

func (m *Manager) flashCookieName() string {
	return m.cookieName + "_flash"
}

func (m *Manager) SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.flashCookieName(),
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(m.flashCookieName())
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.flashCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
