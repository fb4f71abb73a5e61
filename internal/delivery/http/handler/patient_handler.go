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

type PatientHandler struct {
	sessions  *session.Manager
	api       *backend.Client
	renderer  *render.Renderer
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewPatientHandler(sessions *session.Manager, api *backend.Client, renderer *render.Renderer, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		sessions:  sessions,
		api:       api,
		renderer:  renderer,
		validator: validator,
		log:       log,
	}
}

// Dashboard is the public doctor browser. An anonymous visitor is
// moved into the unauthenticated patient role on first view.
func (h *PatientHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess.Role == entity.RoleAnonymous {
		browsing, err := h.sessions.BrowseAsPatient(r.Context(), w)
		if err != nil {
			h.log.Warnf("Failed to start browsing session: %v", err)
		} else {
			sess = browsing
		}
	}

	filter := doctorFilterFromQuery(r)
	doctors, err := h.api.ListDoctors(r.Context(), filter)
	if err != nil {
		h.log.Warnf("Failed to load doctors: %v", err)
		h.renderer.Error(w, http.StatusBadGateway, "Error loading doctors. Please try again.")
		return
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.PatientDashboardView{
		Page:   render.NewPage("Find a Doctor", sess, flash),
		Filter: filter,
		Cards:  render.DoctorCards(doctors, sess.Role),
	}
	h.renderer.Render(w, "patientDashboard", view)
}

// Book renders the booking overlay for one doctor: the patient profile
// is fetched first, exactly like the card's Book Now flow.
func (h *PatientHandler) Book(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	doctorID, err := strconv.ParseInt(mux.Vars(r)["doctorID"], 10, 64)
	if err != nil {
		response.Found(w, r, "/patientDashboard")
		return
	}

	patient, err := h.api.GetPatient(r.Context(), sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			forceLogout(w, r, h.sessions, h.log)
			return
		}
		h.log.Warnf("Failed to fetch patient profile: %v", err)
		h.sessions.SetFlash(w, "Failed to fetch patient data.")
		response.Found(w, r, "/patientDashboard")
		return
	}

	doctor, err := h.findDoctor(r, doctorID)
	if err != nil {
		h.log.Warnf("Failed to load doctor %d: %v", doctorID, err)
		h.sessions.SetFlash(w, "Doctor not found.")
		response.Found(w, r, "/patientDashboard")
		return
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.BookingView{
		Page:    render.NewPage("Book an Appointment", sess, flash),
		Doctor:  doctor,
		Patient: patient,
	}
	h.renderer.Render(w, "booking", view)
}

// BookSubmit posts the chosen slot to the backend.
func (h *PatientHandler) BookSubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	doctorID, err := strconv.ParseInt(mux.Vars(r)["doctorID"], 10, 64)
	if err != nil {
		response.SeeOther(w, r, "/patientDashboard")
		return
	}

	form := dto.BookingForm{
		Date: r.PostFormValue("date"),
		Time: r.PostFormValue("time"),
	}
	if err := h.validator.Validate(&form); err != nil {
		h.sessions.SetFlash(w, h.validator.FirstError(err))
		response.SeeOther(w, r, "/patient/book/"+strconv.FormatInt(doctorID, 10))
		return
	}

	_, err = h.api.BookAppointment(r.Context(), backend.BookingRequest{
		DoctorID: doctorID,
		Date:     form.Date,
		Time:     form.Time,
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
			h.log.Warnf("Failed to book appointment with doctor %d: %v", doctorID, err)
			h.sessions.SetFlash(w, "Error: could not book the appointment.")
		}
		response.SeeOther(w, r, "/patient/book/"+strconv.FormatInt(doctorID, 10))
		return
	}

	h.sessions.SetFlash(w, "Appointment booked successfully!")
	response.SeeOther(w, r, "/patient/appointments")
}

// Appointments lists the logged-in patient's own appointments.
func (h *PatientHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	appointments, err := h.api.ListPatientAppointments(r.Context(), sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			forceLogout(w, r, h.sessions, h.log)
			return
		}
		h.log.Warnf("Failed to load patient appointments: %v", err)
		h.renderer.Error(w, http.StatusBadGateway, "Error loading appointments. Please try again.")
		return
	}

	flash := h.sessions.PopFlash(w, r)
	view := render.PatientAppointmentsView{
		Page: render.NewPage("My Appointments", sess, flash),
		Rows: appointments,
	}
	h.renderer.Render(w, "patientAppointments", view)
}

func (h *PatientHandler) findDoctor(r *http.Request, doctorID int64) (entity.Doctor, error) {
	doctors, err := h.api.ListDoctors(r.Context(), entity.DoctorFilter{})
	if err != nil {
		return entity.Doctor{}, err
	}
	for _, doctor := range doctors {
		if doctor.ID == doctorID {
			return doctor, nil
		}
	}
	return entity.Doctor{}, errors.New("doctor not found")
}
