// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "Email is required"},
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	// Timestamp is the server time when the response was generated.
	Timestamp time.Time `json:"timestamp"`

	// QueryTimeMS is the handler processing time in milliseconds.
	QueryTimeMS int64 `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
