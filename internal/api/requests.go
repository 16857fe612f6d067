// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsync/internal/ai"
	"github.com/tomtom215/skillsync/internal/models"
	"github.com/tomtom215/skillsync/internal/validation"
)

// maxBodyBytes bounds request bodies; assessment payloads are small and the
// chat history is capped separately.
const maxBodyBytes = 256 * 1024

// RegisterRequest is the POST /auth/register payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// ProgressUpdateRequest is the PUT /progress payload.
type ProgressUpdateRequest struct {
	Skill    string `json:"skill" validate:"required,min=1,max=100"`
	Progress int    `json:"progress" validate:"gte=0,lte=100"`
}

// ChatRequest is the POST /ai/chat payload.
type ChatRequest struct {
	Message             string       `json:"message" validate:"required,max=4000"`
	ConversationHistory []ai.Message `json:"conversationHistory" validate:"max=50"`
}

// CareerRecommendationsRequest is the POST /ai/career-recommendations payload.
type CareerRecommendationsRequest struct {
	AssessmentData *models.Assessment `json:"assessmentData" validate:"required"`
}

// LearningPathRequest is the POST /ai/learning-path payload.
type LearningPathRequest struct {
	Role           string   `json:"role" validate:"required,max=100"`
	CurrentSkills  []string `json:"currentSkills" validate:"max=50"`
	TimeCommitment int      `json:"timeCommitment" validate:"gte=0,lte=168"`
}

// ProjectIdeasRequest is the POST /ai/project-ideas payload.
type ProjectIdeasRequest struct {
	Role       string   `json:"role" validate:"required,max=100"`
	Skills     []string `json:"skills" validate:"max=50"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// SkillGapsRequest is the POST /ai/skill-gaps payload.
type SkillGapsRequest struct {
	TargetRole     string             `json:"targetRole" validate:"required,max=100"`
	CurrentSkills  []string           `json:"currentSkills" validate:"max=50"`
	AssessmentData *models.Assessment `json:"assessmentData" validate:"required"`
}

// decodeRequest reads and decodes a JSON request body into dst, then runs
// struct validation. It writes the error response itself and reports whether
// the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		message := "Request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			message = "Request body is required"
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, message)
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// decodeAssessment decodes and validates an assessment payload. The engine
// tolerates a nil assessment but the API requires a body on these routes.
func decodeAssessment(w http.ResponseWriter, r *http.Request) (*models.Assessment, bool) {
	var a models.Assessment
	if !decodeRequest(w, r, &a) {
		return nil, false
	}
	return &a, true
}
