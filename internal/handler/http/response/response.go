package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every failure: a human-readable message and
// a machine-readable code.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "Failed to encode response"})
	}
}

// JSON writes payload with the given status code.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	writeJSON(w, statusCode, payload)
}

// OK writes payload with 200.
func OK(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

// Created writes payload with 201.
func Created(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusCreated, payload)
}

// Error responses
func BadRequest(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: message, Code: code})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Error: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: message})
}
