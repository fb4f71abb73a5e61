package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"clinic-portal/internal/domain/entity"
)

// NewDoctor is the create payload for the admin add-doctor flow.
type NewDoctor struct {
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Mobile       string   `json:"mobile"`
	Availability []string `json:"availability"`
}

// ListDoctors fetches doctors matching the filter. Empty filter fields
// are left out of the query, so a zero filter requests the full list.
func (c *Client) ListDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Time != "" {
		query.Set("time", filter.Time)
	}
	if filter.Specialty != "" {
		query.Set("specialty", filter.Specialty)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/doctors", query, "", nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Doctors []entity.Doctor `json:"doctors"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	return body.Doctors, nil
}

// CreateDoctor registers a doctor on behalf of an admin and returns
// the backend's message.
func (c *Client) CreateDoctor(ctx context.Context, doctor NewDoctor, token string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/doctors", nil, token, doctor)
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

// DeleteDoctor removes a doctor by ID on behalf of an admin.
func (c *Client) DeleteDoctor(ctx context.Context, id int64, token string) error {
	path := fmt.Sprintf("/api/doctors/%d", id)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, token, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
