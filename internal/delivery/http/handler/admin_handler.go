package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-portal/internal/backend"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/render"
	"clinic-portal/internal/session"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// availabilitySlots are the hourly slots offered on the add-doctor
// form, matching the backend's 09:00-17:00 scheduling window.
var availabilitySlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
}

type AdminHandler struct {
	sessions  *session.Manager
	api       *backend.Client
	renderer  *render.Renderer
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewAdminHandler(sessions *session.Manager, api *backend.Client, renderer *render.Renderer, validator *validator.CustomValidator, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		sessions:  sessions,
		api:       api,
		renderer:  renderer,
		validator: validator,
		log:       log,
	}
}

// Dashboard repaints the doctor card list from a fresh fetch. Filter
// inputs arrive as query parameters; empty ones mean the full list.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	filter := doctorFilterFromQuery(r)

	doctors, err := h.api.ListDoctors(r.Context(), filter)
	if err != nil {
		h.log.Warnf("Failed to load doctors: %v", err)
		h.renderer.Error(w, http.StatusBadGateway, "Error loading doctors. Please try again.")
		return
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.AdminDashboardView{
		Page:              render.NewPage("Admin Dashboard", sess, flash),
		Filter:            filter,
		Cards:             render.DoctorCards(doctors, sess.Role),
		AvailabilitySlots: availabilitySlots,
	}
	h.renderer.Render(w, "adminDashboard", view)
}

// AddDoctor handles the add-doctor form post.
func (h *AdminHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		h.sessions.SetFlash(w, "Invalid form submission.")
		response.SeeOther(w, r, "/adminDashboard")
		return
	}

	form := dto.AddDoctorForm{
		Name:         r.PostFormValue("name"),
		Specialty:    r.PostFormValue("specialty"),
		Email:        r.PostFormValue("email"),
		Password:     r.PostFormValue("password"),
		Mobile:       r.PostFormValue("mobile"),
		Availability: r.PostForm["availability"],
	}
	if err := h.validator.Validate(&form); err != nil {
		h.sessions.SetFlash(w, h.validator.FirstError(err))
		response.SeeOther(w, r, "/adminDashboard#add-doctor")
		return
	}

	_, err := h.api.CreateDoctor(r.Context(), backend.NewDoctor{
		Name:         form.Name,
		Specialty:    form.Specialty,
		Email:        form.Email,
		Password:     form.Password,
		Mobile:       form.Mobile,
		Availability: form.Availability,
	}, sess.Token)
	if err != nil {
		var apiErr *backend.APIError
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			forceLogout(w, r, h.sessions, h.log)
			return
		case errors.As(err, &apiErr) && apiErr.Message != "":
			h.sessions.SetFlash(w, "Error: "+apiErr.Message)
		default:
			h.log.Warnf("Failed to create doctor: %v", err)
			h.sessions.SetFlash(w, "Error: could not add doctor.")
		}
		response.SeeOther(w, r, "/adminDashboard#add-doctor")
		return
	}

	h.sessions.SetFlash(w, "Doctor added successfully!")
	response.SeeOther(w, r, "/adminDashboard")
}

// DeleteDoctor handles the per-card delete action. On failure the list
// is repainted unchanged; the card disappears only after the backend
// confirmed the delete.
func (h *AdminHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.sessions.SetFlash(w, "Failed to delete doctor.")
		response.SeeOther(w, r, "/adminDashboard")
		return
	}

	if err := h.api.DeleteDoctor(r.Context(), id, sess.Token); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			forceLogout(w, r, h.sessions, h.log)
			return
		}
		h.log.Warnf("Failed to delete doctor %d: %v", id, err)
		h.sessions.SetFlash(w, "Failed to delete doctor.")
		response.SeeOther(w, r, "/adminDashboard")
		return
	}

	h.sessions.SetFlash(w, "Doctor deleted successfully.")
	response.SeeOther(w, r, "/adminDashboard")
}

func doctorFilterFromQuery(r *http.Request) entity.DoctorFilter {
	return entity.DoctorFilter{
		Name:      r.URL.Query().Get("name"),
		Time:      r.URL.Query().Get("time"),
		Specialty: r.URL.Query().Get("specialty"),
	}
}
