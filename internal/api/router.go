// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/skillsync/internal/middleware"
)

// Router assembles the full route tree with middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(withStartTime)
	r.Use(middleware.Prometheus)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !s.cfg.Security.RateLimitDisabled {
			r.Use(httprate.Limit(
				s.cfg.Security.RateLimitRequests,
				s.cfg.Security.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(rateLimited),
			))
		}

		r.Get("/health", s.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)

			r.Group(func(r chi.Router) {
				r.Use(s.jwt.Middleware)
				r.Get("/userinfo", s.handleUserInfo)
			})
		})

		r.Route("/assessment", func(r chi.Router) {
			r.Use(s.jwt.Middleware)
			r.Post("/pathway", s.handlePathway)
			r.Post("/dashboard", s.handleDashboard)
		})

		r.Route("/pathway", func(r chi.Router) {
			r.Use(s.jwt.Middleware)
			r.Get("/roles", s.handleRoles)
			r.Get("/courses/{role}", s.handleCourses)
			r.Get("/projects/{role}", s.handleProjects)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Use(s.jwt.Middleware)
			r.Get("/", s.handleProgressList)
			r.Put("/", s.handleProgressUpdate)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(s.jwt.Middleware)
			if !s.cfg.Security.RateLimitDisabled {
				r.Use(httprate.Limit(
					s.cfg.Security.AIRateLimitRequests,
					s.cfg.Security.AIRateLimitWindow,
					httprate.WithKeyFuncs(httprate.KeyByIP),
					httprate.WithLimitHandler(rateLimited),
				))
			}
			r.Post("/chat", s.handleChat)
			r.Post("/career-recommendations", s.handleCareerRecommendations)
			r.Post("/learning-path", s.handleLearningPath)
			r.Post("/project-ideas", s.handleProjectIdeas)
			r.Post("/skill-gaps", s.handleSkillGaps)
		})
	})

	return r
}

// withStartTime records when request handling began so the envelope can
// report query time.
func withStartTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), startTimeKey, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests,
		"Too many requests, please slow down")
}
