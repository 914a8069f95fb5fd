// Package web holds the JSON response helpers shared by all HTTP handlers.
package web

import (
	"encoding/json"
	"net/http"
)

// Respond writes body as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, map[string]string{"error": message})
}
