// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package models

// Skill status values assigned by pathway personalization.
const (
	SkillStatusNotStarted = "not-started"
	SkillStatusInProgress = "in-progress"
)

// Skill priority values in the curriculum.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillItem is one skill in a role's curriculum.
type SkillItem struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Priority string `json:"priority"`
}

// SkillCategory groups curriculum skills into an ordered stage
// (Foundation, Core, Advanced, ...).
type SkillCategory struct {
	ID       int         `json:"id"`
	Category string      `json:"category"`
	Skills   []SkillItem `json:"skills"`
}

// PersonalizedSkill is a curriculum skill annotated with the student's
// status and progress percentage.
type PersonalizedSkill struct {
	SkillItem
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// PersonalizedCategory mirrors SkillCategory with personalized skills.
type PersonalizedCategory struct {
	ID       int                 `json:"id"`
	Category string              `json:"category"`
	Skills   []PersonalizedSkill `json:"skills"`
}

// Project is a portfolio project template for a role.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Duration     string   `json:"duration"`
	Skills       []string `json:"skills"`
	Deliverables []string `json:"deliverables"`
}

// Course is a recommended external course for a role.
type Course struct {
	Title    string   `json:"title"`
	Platform string   `json:"platform"`
	Provider string   `json:"provider"`
	Duration string   `json:"duration"`
	Rating   float64  `json:"rating"`
	Level    string   `json:"level"`
	Price    string   `json:"price"`
	Skills   []string `json:"skills"`
}

// RoleProfile is the static reference data for one supported career role.
// Profiles are loaded once at process start and never mutated.
type RoleProfile struct {
	Salary         string          `json:"salary"`
	Growth         string          `json:"growth"`
	DemandScore    int             `json:"demandScore"`
	Industries     []string        `json:"industries"`
	Description    string          `json:"description"`
	AverageTime    string          `json:"averageTime"`
	RequiredSkills []string        `json:"requiredSkills"`
	SkillPathway   []SkillCategory `json:"skillPathway"`
	Projects       []Project       `json:"projects"`
}

// CareerPathway is the engine's primary output: the recommended role with a
// match score and a curriculum personalized to the student's skills.
// Recomputed on every call; it has no identity and is never persisted.
type CareerPathway struct {
	Role             string                 `json:"role"`
	MatchScore       int                    `json:"matchScore"`
	Salary           string                 `json:"salary"`
	Growth           string                 `json:"growth"`
	DemandScore      int                    `json:"demandScore"`
	Industries       []string               `json:"industries"`
	Description      string                 `json:"description"`
	AverageTimeToJob string                 `json:"averageTimeToJob"`
	SkillPathway     []PersonalizedCategory `json:"skillPathway"`
	Projects         []Project              `json:"projects"`
}
