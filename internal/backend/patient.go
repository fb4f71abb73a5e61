package backend

import (
	"context"
	"net/http"

	"clinic-portal/internal/domain/entity"
)

// GetPatient fetches the profile of the patient the token belongs to,
// the input of the booking overlay.
func (c *Client) GetPatient(ctx context.Context, token string) (entity.Patient, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/patient/me", nil, token, nil)
	if err != nil {
		return entity.Patient{}, err
	}

	var body struct {
		Patient entity.Patient `json:"patient"`
	}
	if err := c.do(req, &body); err != nil {
		return entity.Patient{}, err
	}
	return body.Patient, nil
}
