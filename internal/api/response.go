// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package api implements the HTTP surface: routing, request decoding and
// validation, and the standardized response envelope.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsync/internal/logging"
	"github.com/tomtom215/skillsync/internal/models"
)

// Error codes returned in the response envelope.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeValidationFailed   = "VALIDATION_ERROR"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeExternalService    = "EXTERNAL_SERVICE_FAILED"
)

// respondJSON writes a success envelope with the handler's payload.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	start, _ := r.Context().Value(startTimeKey).(time.Time)

	resp := models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	}
	if !start.IsZero() {
		resp.Metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}

	writeJSON(w, r, status, resp)
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondErrorDetails(w, r, status, code, message, nil)
}

func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	resp := models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}

type contextKey string

const startTimeKey contextKey = "handler_start"
