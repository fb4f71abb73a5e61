package handler

import (
	"errors"
	"net/http"

	"clinic-portal/internal/backend"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/validator"

	"github.com/sirupsen/logrus"
)

const (
	invalidCredentialsMessage = "Invalid credentials!"
	loginFailedMessage        = "An error occurred during login."
)

type AuthHandler struct {
	sessions  *session.Manager
	api       *backend.Client
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewAuthHandler(sessions *session.Manager, api *backend.Client, validator *validator.CustomValidator, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		api:       api,
		validator: validator,
		log:       log,
	}
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	form := dto.AdminLoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Validate(&form); err != nil {
		h.sessions.SetFlash(w, h.validator.FirstError(err))
		response.SeeOther(w, r, "/")
		return
	}

	token, err := h.api.LoginAdmin(r.Context(), form.Username, form.Password)
	h.finishLogin(w, r, entity.RoleAdmin, "/adminDashboard", token, err)
}

func (h *AuthHandler) DoctorLogin(w http.ResponseWriter, r *http.Request) {
	form := dto.DoctorLoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Validate(&form); err != nil {
		h.sessions.SetFlash(w, h.validator.FirstError(err))
		response.SeeOther(w, r, "/")
		return
	}

	token, err := h.api.LoginDoctor(r.Context(), form.Email, form.Password)
	h.finishLogin(w, r, entity.RoleDoctor, "/doctorDashboard", token, err)
}

func (h *AuthHandler) PatientLogin(w http.ResponseWriter, r *http.Request) {
	form := dto.PatientLoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Validate(&form); err != nil {
		h.sessions.SetFlash(w, h.validator.FirstError(err))
		response.SeeOther(w, r, "/")
		return
	}

	token, err := h.api.LoginPatient(r.Context(), form.Email, form.Password)
	h.finishLogin(w, r, entity.RoleLoggedPatient, "/patientDashboard", token, err)
}

func (h *AuthHandler) finishLogin(w http.ResponseWriter, r *http.Request, role entity.Role, dashboard, token string, err error) {
	if err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			h.sessions.SetFlash(w, invalidCredentialsMessage)
		} else {
			h.log.Warnf("Login for role %s failed: %v", role, err)
			h.sessions.SetFlash(w, loginFailedMessage)
		}
		response.SeeOther(w, r, "/")
		return
	}

	if _, err := h.sessions.Login(r.Context(), w, role, token); err != nil {
		h.log.Errorf("Failed to create session for role %s: %v", role, err)
		h.sessions.SetFlash(w, loginFailedMessage)
		response.SeeOther(w, r, "/")
		return
	}
	response.SeeOther(w, r, dashboard)
}

// Logout clears role and token and returns to the home page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.sessions.Logout(r.Context(), w, sess); err != nil {
		h.log.Warnf("Failed to destroy session on logout: %v", err)
	}
	response.SeeOther(w, r, "/")
}

// LogoutPatient clears the token only and keeps browsing as an
// unauthenticated patient. A session that never logged in has no token
// to clear and passes through untouched.
func (h *AuthHandler) LogoutPatient(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess.Authenticated() {
		if _, err := h.sessions.DowngradeToPatient(r.Context(), sess); err != nil {
			h.log.Warnf("Failed to downgrade session: %v", err)
		}
	}
	response.SeeOther(w, r, "/patientDashboard")
}
