package handler

import (
	"errors"
	"net/http"
	"time"

	"clinic-portal/internal/backend"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/render"
	"clinic-portal/internal/session"

	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	sessions *session.Manager
	api      *backend.Client
	renderer *render.Renderer
	log      *logrus.Logger
}

func NewDoctorHandler(sessions *session.Manager, api *backend.Client, renderer *render.Renderer, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		sessions: sessions,
		api:      api,
		renderer: renderer,
		log:      log,
	}
}

// Dashboard shows the doctor's appointments for one date, today by
// default, with an optional patient-name filter.
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	patientName := r.URL.Query().Get("patientName")

	appointments, err := h.api.ListAppointments(r.Context(), date, patientName, sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			forceLogout(w, r, h.sessions, h.log)
			return
		}
		h.log.Warnf("Failed to load appointments: %v", err)
		h.renderer.Error(w, http.StatusBadGateway, "Error loading appointments. Please try again.")
		return
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.DoctorDashboardView{
		Page:        render.NewPage("Doctor Dashboard", sess, flash),
		Date:        date,
		PatientName: patientName,
		Rows:        appointments,
	}
	h.renderer.Render(w, "doctorDashboard", view)
}
