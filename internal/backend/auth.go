package backend

import (
	"context"
	"errors"
	"net/http"
)

type adminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type emailCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginAdmin exchanges admin credentials for a bearer token.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	return c.login(ctx, "/admin", adminCredentials{Username: username, Password: password})
}

// LoginDoctor exchanges doctor credentials for a bearer token.
func (c *Client) LoginDoctor(ctx context.Context, email, password string) (string, error) {
	return c.login(ctx, "/doctor/login", emailCredentials{Email: email, Password: password})
}

// LoginPatient exchanges patient credentials for a bearer token.
func (c *Client) LoginPatient(ctx context.Context, email, password string) (string, error) {
	return c.login(ctx, "/patient/login", emailCredentials{Email: email, Password: password})
}

func (c *Client) login(ctx context.Context, path string, credentials interface{}) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, "", credentials)
	if err != nil {
		return "", err
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &body); err != nil {
		var apiErr *APIError
		if errors.Is(err, ErrUnauthorized) {
			return "", ErrInvalidCredentials
		}
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if body.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return body.Token, nil
}
