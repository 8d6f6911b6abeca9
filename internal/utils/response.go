package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// FieldErrors writes a 400 with per-field messages.
func FieldErrors(w http.ResponseWriter, msg string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, map[string]any{"error": msg, "fields": fields})
}
