package http

import (
	"net/http"

	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	homeHandler       *handler.HomeHandler
	authHandler       *handler.AuthHandler
	adminHandler      *handler.AdminHandler
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	sessionMiddleware *middleware.SessionMiddleware
	roleMiddleware    *middleware.RoleMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	rateLimiter       *middleware.RateLimiter
}

func NewRouter(
	homeHandler *handler.HomeHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		homeHandler:       homeHandler,
		authHandler:       authHandler,
		adminHandler:      adminHandler,
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		sessionMiddleware: sessionMiddleware,
		roleMiddleware:    roleMiddleware,
		loggingMiddleware: loggingMiddleware,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.sessionMiddleware.Handle)

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Home page; visiting it resets the session
	r.router.HandleFunc("/", r.homeHandler.Show).Methods(http.MethodGet)

	// Login routes (public, rate limited)
	login := r.router.PathPrefix("/login").Subrouter()
	login.Use(r.rateLimiter.Handle)
	login.HandleFunc("/admin", r.authHandler.AdminLogin).Methods(http.MethodPost)
	login.HandleFunc("/doctor", r.authHandler.DoctorLogin).Methods(http.MethodPost)
	login.HandleFunc("/patient", r.authHandler.PatientLogin).Methods(http.MethodPost)

	// Logout transitions
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	r.router.HandleFunc("/logout/patient", r.authHandler.LogoutPatient).Methods(http.MethodPost)

	// Admin pages (admin only)
	adminDash := r.router.PathPrefix("/adminDashboard").Subrouter()
	adminDash.Use(r.roleMiddleware.RequireAdmin)
	adminDash.HandleFunc("", r.adminHandler.Dashboard).Methods(http.MethodGet)

	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.roleMiddleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.adminHandler.AddDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/delete", r.adminHandler.DeleteDoctor).Methods(http.MethodPost)

	// Doctor pages (doctor only)
	doctorDash := r.router.PathPrefix("/doctorDashboard").Subrouter()
	doctorDash.Use(r.roleMiddleware.RequireDoctor)
	doctorDash.HandleFunc("", r.doctorHandler.Dashboard).Methods(http.MethodGet)

	// Patient browsing is public; booking and appointments require login
	r.router.HandleFunc("/patientDashboard", r.patientHandler.Dashboard).Methods(http.MethodGet)

	patient := r.router.PathPrefix("/patient").Subrouter()
	patient.Use(r.roleMiddleware.RequireLoggedPatient)
	patient.HandleFunc("/appointments", r.patientHandler.Appointments).Methods(http.MethodGet)
	patient.HandleFunc("/book/{doctorID}", r.patientHandler.Book).Methods(http.MethodGet)
	patient.HandleFunc("/book/{doctorID}", r.patientHandler.BookSubmit).Methods(http.MethodPost)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", nil)
}
