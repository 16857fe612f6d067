// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/skillsync/internal/logging"
)

func TestRequestIDGenerated(t *testing.T) {
	t.Parallel()

	var ctxID, logID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
		logID = logging.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ctxID == "" {
		t.Fatal("no request ID in context")
	}
	if logID != ctxID {
		t.Errorf("logging context ID %q differs from middleware ID %q", logID, ctxID)
	}
	if header := rec.Header().Get("X-Request-ID"); header != ctxID {
		t.Errorf("X-Request-ID header = %q, want %q", header, ctxID)
	}
}

func TestRequestIDHonorsUpstream(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetRequestID(r.Context()); got != "proxy-id-42" {
			t.Errorf("GetRequestID() = %q, want proxy-id-42", got)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "proxy-id-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestGetRequestIDMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}
