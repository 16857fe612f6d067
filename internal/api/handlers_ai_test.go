// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// newFakeUpstream serves canned chat completions. Requests with a JSON
// response format get a JSON object back; plain chat gets text.
func newFakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("upstream path = %q", r.URL.Path)
		}

		var req struct {
			ResponseFormat *struct {
				Type string `json:"type"`
			} `json:"response_format"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		content := "Focus on SQL and Python first."
		if req.ResponseFormat != nil && req.ResponseFormat.Type == "json_object" {
			content = `{"recommendations":[{"role":"Data Analyst"}]}`
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 20, "completion_tokens": 10},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatEndpoint(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "chat@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/chat", token, map[string]interface{}{
		"message": "What should I learn first?",
		"conversationHistory": []map[string]string{
			{"role": "user", "content": "Hi"},
			{"role": "assistant", "content": "Hello! How can I help?"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	var data struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !strings.Contains(data.Response, "SQL") {
		t.Errorf("response = %q, want upstream reply", data.Response)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "chat-empty@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/chat", token, map[string]interface{}{
		"message": "",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatRequiresAuth(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/chat", "", map[string]interface{}{
		"message": "hello",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAIDisabledReturns503(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, "")
	token := registerUser(t, h, "no-ai@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/chat", token, map[string]interface{}{
		"message": "hello",
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeServiceUnavailable)
	}
}

func TestCareerRecommendationsEndpoint(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "recs@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/career-recommendations", token, map[string]interface{}{
		"assessmentData": validAssessment(),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	var data struct {
		Recommendations []struct {
			Role string `json:"role"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Recommendations) != 1 || data.Recommendations[0].Role != "Data Analyst" {
		t.Errorf("recommendations = %+v", data.Recommendations)
	}
}

func TestLearningPathEndpoint(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "path@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/learning-path", token, map[string]interface{}{
		"role":           "Data Analyst",
		"currentSkills":  []string{"Excel"},
		"timeCommitment": 10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestProjectIdeasRejectsBadDifficulty(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "ideas@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/project-ideas", token, map[string]interface{}{
		"role":       "Data Analyst",
		"difficulty": "impossible",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSkillGapsEndpoint(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t)
	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "gaps@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/skill-gaps", token, map[string]interface{}{
		"targetRole":     "Machine Learning Engineer",
		"currentSkills":  []string{"Python"},
		"assessmentData": validAssessment(),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAIUpstreamFailureReturns502(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	h := newTestServer(t, upstream.URL)
	token := registerUser(t, h, "ai-down@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/ai/chat", token, map[string]interface{}{
		"message": "hello",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeExternalService {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeExternalService)
	}
}
