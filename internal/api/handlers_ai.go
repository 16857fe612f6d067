// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsync/internal/ai"
	"github.com/tomtom215/skillsync/internal/logging"
)

// requireAI gates the AI routes when no upstream is configured.
func (s *Server) requireAI(w http.ResponseWriter, r *http.Request) bool {
	if s.ai == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"AI assistant is not configured")
		return false
	}
	return true
}

// respondAIError maps upstream failures onto the envelope. A tripped
// circuit breaker and a hard upstream failure both read as 502 to the
// caller; the distinction lives in logs and metrics.
func respondAIError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ai.ErrUnavailable) {
		respondError(w, r, http.StatusBadGateway, ErrCodeExternalService,
			"AI assistant is temporarily unavailable, please try again shortly")
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Msg("AI request failed")
	respondError(w, r, http.StatusBadGateway, ErrCodeExternalService,
		"AI assistant could not process the request")
}

// handleChat proxies a conversational turn to the language model.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !s.requireAI(w, r) {
		return
	}
	var req ChatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	reply, err := s.ai.Chat(r.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		respondAIError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"response": reply})
}

// handleCareerRecommendations returns model-generated career suggestions
// as structured JSON.
func (s *Server) handleCareerRecommendations(w http.ResponseWriter, r *http.Request) {
	if !s.requireAI(w, r) {
		return
	}
	var req CareerRecommendationsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := s.ai.CareerRecommendations(r.Context(), req.AssessmentData)
	if err != nil {
		respondAIError(w, r, err)
		return
	}
	respondRaw(w, r, result)
}

// handleLearningPath returns a model-generated weekly study plan.
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	if !s.requireAI(w, r) {
		return
	}
	var req LearningPathRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := s.ai.LearningPath(r.Context(), req.Role, req.CurrentSkills, req.TimeCommitment)
	if err != nil {
		respondAIError(w, r, err)
		return
	}
	respondRaw(w, r, result)
}

// handleProjectIdeas returns model-generated portfolio project ideas.
func (s *Server) handleProjectIdeas(w http.ResponseWriter, r *http.Request) {
	if !s.requireAI(w, r) {
		return
	}
	var req ProjectIdeasRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := s.ai.ProjectIdeas(r.Context(), req.Role, req.Skills, req.Difficulty)
	if err != nil {
		respondAIError(w, r, err)
		return
	}
	respondRaw(w, r, result)
}

// handleSkillGaps returns a model-generated gap analysis for a target role.
func (s *Server) handleSkillGaps(w http.ResponseWriter, r *http.Request) {
	if !s.requireAI(w, r) {
		return
	}
	var req SkillGapsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := s.ai.SkillGaps(r.Context(), req.TargetRole, req.CurrentSkills, req.AssessmentData)
	if err != nil {
		respondAIError(w, r, err)
		return
	}
	respondRaw(w, r, result)
}

// respondRaw wraps already-validated JSON from the model in the envelope
// without a decode round trip.
func respondRaw(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	respondJSON(w, r, http.StatusOK, raw)
}
