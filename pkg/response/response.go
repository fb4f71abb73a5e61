// Package response holds the small shared HTTP reply helpers used by
// handlers and middleware: post-redirect-get redirects and the JSON
// replies of the health endpoint.
package response

import (
	"encoding/json"
	"net/http"
)

type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SeeOther is the post-redirect-get reply every mutation handler ends
// with, so a browser refresh never replays the form.
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// Found redirects a GET to another page.
func Found(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}
