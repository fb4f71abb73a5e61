// Package render turns session state and backend records into HTML.
// Renderers are pure functions of their input; state changes only
// happen through the session manager transitions wired to the routes
// the rendered markup points at.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"clinic-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
	log  *logrus.Logger
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	tmpl, err := template.New("portal").ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Page carries what every view needs: the header nav for the current
// role and the pending flash message.
type Page struct {
	Title string
	Role  entity.Role
	Nav   []NavAction
	Flash string
}

func NewPage(title string, sess entity.Session, flash string) Page {
	return Page{
		Title: title,
		Role:  sess.Role,
		Nav:   Nav(sess),
		Flash: flash,
	}
}

type HomeView struct {
	Page
}

type AdminDashboardView struct {
	Page
	Filter            entity.DoctorFilter
	Cards             []DoctorCard
	AvailabilitySlots []string
}

type DoctorDashboardView struct {
	Page
	Date        string
	PatientName string
	Rows        []entity.Appointment
}

type PatientDashboardView struct {
	Page
	Filter entity.DoctorFilter
	Cards  []DoctorCard
}

type PatientAppointmentsView struct {
	Page
	Rows []entity.Appointment
}

type BookingView struct {
	Page
	Doctor  entity.Doctor
	Patient entity.Patient
}

type ErrorView struct {
	Page
	Status  int
	Message string
}

// Render executes the named page template. The output is buffered so a
// template failure yields a clean error page instead of torn markup.
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Errorf("Failed to render template %s: %v", name, err)
		r.Error(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Error renders the static error page with a fixed user-facing message.
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	view := ErrorView{
		Page:    NewPage("Error", entity.Anonymous(), ""),
		Status:  status,
		Message: message,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "error", view); err != nil {
		r.log.Errorf("Failed to render error page: %v", err)
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
