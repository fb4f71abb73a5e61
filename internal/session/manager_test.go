package session

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/config"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()

	cfg := config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "clinic_session",
		TTL:        time.Hour,
	}
	store := NewMemoryStore(cfg.TTL)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewManager(cfg, store, jwt.NewCookieSigner(cfg), log), store
}

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/adminDashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}
	return req
}

func TestLoginAndResolve(t *testing.T) {
	m, _ := newTestManager(t)
	rec := httptest.NewRecorder()

	sess, err := m.Login(context.Background(), rec, entity.RoleAdmin, "backend-token")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a session ID")
	}

	got, err := m.Resolve(requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if got.Role != entity.RoleAdmin {
		t.Fatalf("expected role admin, got %q", got.Role)
	}
	if got.Token != "backend-token" {
		t.Fatalf("expected backend token to round-trip, got %q", got.Token)
	}
}

func TestLoginRejectsAuthenticatedRoleWithoutToken(t *testing.T) {
	m, _ := newTestManager(t)
	rec := httptest.NewRecorder()

	if _, err := m.Login(context.Background(), rec, entity.RoleDoctor, ""); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestResolveWithoutCookie(t *testing.T) {
	m, _ := newTestManager(t)

	sess, err := m.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if sess.Role != entity.RoleAnonymous {
		t.Fatalf("expected anonymous, got %q", sess.Role)
	}
}

func TestResolveGarbageCookie(t *testing.T) {
	m, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "clinic_session", Value: "garbage"})

	sess, err := m.Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if sess.Role != entity.RoleAnonymous {
		t.Fatalf("expected anonymous for garbage cookie, got %q", sess.Role)
	}
}

func TestLogoutClearsRoleAndToken(t *testing.T) {
	m, store := newTestManager(t)
	rec := httptest.NewRecorder()

	sess, err := m.Login(context.Background(), rec, entity.RoleAdmin, "tok")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	logoutRec := httptest.NewRecorder()
	if err := m.Logout(context.Background(), logoutRec, sess); err != nil {
		t.Fatalf("Logout() returned error: %v", err)
	}

	if _, err := store.Get(context.Background(), sess.ID); err != ErrNotFound {
		t.Fatalf("expected record deleted, got %v", err)
	}

	cleared := false
	for _, cookie := range logoutRec.Result().Cookies() {
		if cookie.Name == "clinic_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the session cookie to be cleared")
	}
}

func TestDowngradeToPatientKeepsRecord(t *testing.T) {
	m, store := newTestManager(t)
	rec := httptest.NewRecorder()

	sess, err := m.Login(context.Background(), rec, entity.RoleLoggedPatient, "tok")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	downgraded, err := m.DowngradeToPatient(context.Background(), sess)
	if err != nil {
		t.Fatalf("DowngradeToPatient() returned error: %v", err)
	}
	if downgraded.Role != entity.RolePatient {
		t.Fatalf("expected role patient, got %q", downgraded.Role)
	}
	if downgraded.Token != "" {
		t.Fatalf("expected token cleared, got %q", downgraded.Token)
	}

	stored, err := store.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("expected record to survive the downgrade: %v", err)
	}
	if stored.Role != entity.RolePatient || stored.Token != "" {
		t.Fatalf("expected stored patient record without token, got %+v", stored)
	}
}

func TestExpiredRecordForcedOutOnce(t *testing.T) {
	m, store := newTestManager(t)
	rec := httptest.NewRecorder()

	sess, err := m.Login(context.Background(), rec, entity.RoleDoctor, "tok")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	// Simulate a record that lost its token.
	broken := sess
	broken.Token = ""
	if err := store.Put(context.Background(), broken); err != nil {
		t.Fatalf("Put() returned error: %v", err)
	}

	got, err := m.Resolve(requestWithCookies(t, rec))
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if got.Role != entity.RoleDoctor {
		t.Fatalf("expected the stale session back for logging, got %+v", got)
	}

	// The record is gone, so a second resolve is plain anonymous.
	again, err := m.Resolve(requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("second Resolve() returned error: %v", err)
	}
	if again.Role != entity.RoleAnonymous {
		t.Fatalf("expected anonymous on second resolve, got %q", again.Role)
	}
}

func TestFlashIsOneShot(t *testing.T) {
	m, _ := newTestManager(t)

	setRec := httptest.NewRecorder()
	m.SetFlash(setRec, "Doctor deleted successfully.")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range setRec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	popRec := httptest.NewRecorder()
	if msg := m.PopFlash(popRec, req); msg != "Doctor deleted successfully." {
		t.Fatalf("expected flash message back, got %q", msg)
	}

	// The pop response clears the cookie.
	cleared := false
	for _, cookie := range popRec.Result().Cookies() {
		if cookie.Name == "clinic_session_flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the flash cookie to be cleared")
	}

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	if msg := m.PopFlash(httptest.NewRecorder(), bare); msg != "" {
		t.Fatalf("expected no flash without cookie, got %q", msg)
	}
}
