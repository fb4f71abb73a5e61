// Package backend is the portal's client for the clinic REST backend.
// It owns the request/response mapping for the four resources the
// portal consumes: doctors, appointments, patients and auth. It holds
// no state beyond the base URL and the HTTP client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"clinic-portal/config"

	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, token string, body interface{}) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx body into out (when out is
// non-nil). Non-2xx statuses and transport failures come back as
// distinguishable errors; nothing is thrown past the caller.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("Backend request failed: %s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warnf("Backend response decode failed: %s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	// Best effort; an empty or non-JSON error body keeps a blank message.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return &APIError{Status: resp.StatusCode, Message: body.Message}
}
