// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/ai"
	"github.com/tomtom215/skillsync/internal/auth"
	"github.com/tomtom215/skillsync/internal/config"
	"github.com/tomtom215/skillsync/internal/dashboard"
	"github.com/tomtom215/skillsync/internal/logging"
	"github.com/tomtom215/skillsync/internal/metrics"
	"github.com/tomtom215/skillsync/internal/models"
	"github.com/tomtom215/skillsync/internal/pathway"
	"github.com/tomtom215/skillsync/internal/progress"
	"github.com/tomtom215/skillsync/internal/userstore"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server holds the handler dependencies.
type Server struct {
	cfg       *config.Config
	engine    *pathway.Engine
	dashboard *dashboard.Service
	users     *userstore.Store
	progress  *progress.Store
	jwt       *auth.JWTManager
	ai        *ai.Service
	logger    zerolog.Logger
	startedAt time.Time
}

// NewServer wires the API surface. The ai service may be nil when no API
// key is configured; AI routes then answer 503.
func NewServer(
	cfg *config.Config,
	engine *pathway.Engine,
	dash *dashboard.Service,
	users *userstore.Store,
	prog *progress.Store,
	jwt *auth.JWTManager,
	aiSvc *ai.Service,
	logger zerolog.Logger,
) *Server {
	return &Server{
		cfg:       cfg,
		engine:    engine,
		dashboard: dash,
		users:     users,
		progress:  prog,
		jwt:       jwt,
		ai:        aiSvc,
		logger:    logger.With().Str("component", "api").Logger(),
		startedAt: time.Now(),
	}
}

// handleHealth reports liveness plus coarse component status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"version":       Version,
		"uptimeSeconds": int64(time.Since(s.startedAt).Seconds()),
		"aiEnabled":     s.ai != nil,
	})
}

// handlePathway computes the career pathway for a submitted assessment.
// When the caller is authenticated, stored skill progress overrides the
// engine's derived starting progress.
func (s *Server) handlePathway(w http.ResponseWriter, r *http.Request) {
	a, ok := decodeAssessment(w, r)
	if !ok {
		return
	}

	result := s.engine.GetCareerPathway(a)
	metrics.PathwayComputations.WithLabelValues(result.Role).Inc()

	if userID := auth.UserIDFromContext(r.Context()); userID != "" {
		s.overlayStoredProgress(r, userID, result.SkillPathway)
	}

	respondJSON(w, r, http.StatusOK, result)
}

// overlayStoredProgress replaces derived progress with persisted values.
func (s *Server) overlayStoredProgress(r *http.Request, userID string, categories []models.PersonalizedCategory) {
	records, err := s.progress.List(r.Context(), userID)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to load stored progress")
		return
	}
	if len(records) == 0 {
		return
	}

	bySkill := make(map[string]int, len(records))
	for _, rec := range records {
		bySkill[normalizeSkill(rec.Skill)] = rec.Progress
	}

	for ci := range categories {
		for si := range categories[ci].Skills {
			skill := &categories[ci].Skills[si]
			if stored, ok := bySkill[normalizeSkill(skill.Name)]; ok {
				skill.Progress = stored
				if stored > 0 {
					skill.Status = models.SkillStatusInProgress
				}
			}
		}
	}
}

// handleDashboard computes dashboard metrics for a submitted assessment.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	a, ok := decodeAssessment(w, r)
	if !ok {
		return
	}

	metrics.DashboardComputations.Inc()
	respondJSON(w, r, http.StatusOK, s.dashboard.GetMetrics(a))
}

// handleRoles lists the supported career roles.
func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, pathway.Roles())
}

// handleCourses returns course recommendations for a role. Unknown roles
// fall back to the default list rather than erroring, matching the engine.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	respondJSON(w, r, http.StatusOK, pathway.CoursesFor(role))
}

// handleProjects returns the portfolio projects for a role.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	profile, ok := pathway.Profile(role)
	if !ok {
		profile, _ = pathway.Profile(pathway.FallbackRole)
	}
	respondJSON(w, r, http.StatusOK, profile.Projects)
}

// handleProgressList returns all stored skill progress for the caller.
func (s *Server) handleProgressList(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	records, err := s.progress.List(r.Context(), userID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to list progress")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to load progress")
		return
	}
	respondJSON(w, r, http.StatusOK, records)
}

// handleProgressUpdate stores a skill progress value for the caller.
func (s *Server) handleProgressUpdate(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req ProgressUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := s.progress.Upsert(r.Context(), userID, req.Skill, req.Progress); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to store progress")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to store progress")
		return
	}
	metrics.ProgressUpdates.Inc()

	rec, err := s.progress.Get(r.Context(), userID, req.Skill)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to read back progress")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to read back progress")
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
