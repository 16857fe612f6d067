// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/ai"
	"github.com/tomtom215/skillsync/internal/auth"
	"github.com/tomtom215/skillsync/internal/config"
	"github.com/tomtom215/skillsync/internal/dashboard"
	"github.com/tomtom215/skillsync/internal/models"
	"github.com/tomtom215/skillsync/internal/pathway"
	"github.com/tomtom215/skillsync/internal/progress"
	"github.com/tomtom215/skillsync/internal/userstore"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

// envelope mirrors models.APIResponse for decoding in assertions.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Security: config.SecurityConfig{
			JWTSecret:         testJWTSecret,
			TokenTTL:          time.Hour,
			BcryptCost:        4,
			RateLimitDisabled: true,
		},
	}
}

// newTestServer builds a fully wired handler over temporary stores. When
// aiBaseURL is non-empty the AI service points at that upstream; otherwise
// AI routes are disabled.
func newTestServer(t *testing.T, aiBaseURL string) http.Handler {
	t.Helper()

	cfg := testConfig()
	logger := zerolog.Nop()

	users, err := userstore.New(filepath.Join(t.TempDir(), "users.json"), cfg.Security.BcryptCost, logger)
	if err != nil {
		t.Fatalf("userstore.New: %v", err)
	}

	prog, err := progress.Open("", logger)
	if err != nil {
		t.Fatalf("progress.Open: %v", err)
	}
	t.Cleanup(func() { _ = prog.Close() })

	jwtMgr, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("auth.NewJWTManager: %v", err)
	}

	engine := pathway.NewEngine(logger)
	dash := dashboard.NewService(engine, logger)

	var aiSvc *ai.Service
	if aiBaseURL != "" {
		client := ai.NewClient(&config.AIConfig{
			BaseURL: aiBaseURL,
			APIKey:  "test-key",
			Model:   "gpt-4o-mini",
			Timeout: 5 * time.Second,
			Enabled: true,
		}, logger)
		aiSvc = ai.NewService(client, logger)
	}

	srv := NewServer(cfg, engine, dash, users, prog, jwtMgr, aiSvc, logger)
	return srv.Router()
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses a recorded response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Test Student",
		"email":    email,
		"password": "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	var authResp AuthResponse
	if err := json.Unmarshal(env.Data, &authResp); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	if authResp.Token == "" {
		t.Fatal("register returned empty token")
	}
	return authResp.Token
}

func validAssessment() map[string]interface{} {
	return map[string]interface{}{
		"branch":            "Computer Science",
		"year":              "3",
		"gpa":               8.7,
		"projectsCompleted": 4,
		"skills":            []string{"SQL", "Excel"},
		"dataAnalysis":      5,
		"communication":     4,
		"problemSolving":    4,
		"careerGoal":        "Data Analyst",
	}
}
