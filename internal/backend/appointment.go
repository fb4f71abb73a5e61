package backend

import (
	"context"
	"net/http"
	"net/url"

	"clinic-portal/internal/domain/entity"
)

// ListAppointments fetches a doctor's appointments for one date, with
// an optional patient-name filter.
func (c *Client) ListAppointments(ctx context.Context, date, patientName, token string) ([]entity.Appointment, error) {
	query := url.Values{}
	query.Set("date", date)
	if patientName != "" {
		query.Set("name", patientName)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/appointments", query, token, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Appointments []entity.Appointment `json:"appointments"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	return body.Appointments, nil
}

// ListPatientAppointments fetches the appointments of the patient the
// token belongs to.
func (c *Client) ListPatientAppointments(ctx context.Context, token string) ([]entity.Appointment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/patient/me/appointments", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Appointments []entity.Appointment `json:"appointments"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	return body.Appointments, nil
}

// BookingRequest is the payload of a patient booking.
type BookingRequest struct {
	DoctorID int64  `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookAppointment books a slot with a doctor for the patient the token
// belongs to and returns the backend's message.
func (c *Client) BookAppointment(ctx context.Context, booking BookingRequest, token string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/appointments", nil, token, booking)
	if err != nil {
		return "", err
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}
