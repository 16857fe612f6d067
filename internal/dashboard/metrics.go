// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package dashboard derives the student dashboard view from an assessment.
// All output is recomputed per call; the dashboard has no state of its own.
// Role determination and match scoring are delegated to the pathway engine
// so the dashboard and the career pathway always agree.
package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/models"
	"github.com/tomtom215/skillsync/internal/pathway"
)

// maxCompletionPercent caps profile completion; the last few percent are
// reserved for outcomes the questionnaire cannot verify.
const maxCompletionPercent = 95

// maxSkillProgress caps per-skill progress bars.
const maxSkillProgress = 90

// maxSkillBars limits how many skill bars the dashboard renders.
const maxSkillBars = 5

// trackedSkill is one entry in the fixed skill vocabulary the dashboard can
// chart, with its display color and the interest category that boosts it.
type trackedSkill struct {
	skill    string
	color    string
	category string
}

var trackedSkills = []trackedSkill{
	{"Python", "#3b82f6", "programming"},
	{"Java", "#ef4444", "programming"},
	{"JavaScript", "#f59e0b", "programming"},
	{"SQL", "#10b981", "database"},
	{"Machine Learning", "#8b5cf6", "advanced"},
	{"Data Analysis", "#ec4899", "analytics"},
	{"Web Development", "#06b6d4", "web"},
	{"UI/UX Design", "#f43f5e", "design"},
	{"Cloud Computing", "#14b8a6", "cloud"},
}

// nextSkillByRole lists the recommended learning order per role. The first
// skill the student does not already have becomes the "next skill" card.
var nextSkillByRole = map[string][]string{
	pathway.RoleMLEngineer:       {"Python", "Machine Learning", "Statistics", "Deep Learning", "MLOps"},
	pathway.RoleDataScientist:    {"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"},
	pathway.RoleDataAnalyst:      {"SQL", "Python", "Data Visualization", "Excel", "Statistics"},
	pathway.RoleFullStack:        {"JavaScript", "React", "Node.js", "SQL", "APIs"},
	pathway.RoleUIUXDesigner:     {"Figma", "Design Systems", "User Research", "Prototyping", "CSS"},
	pathway.RoleSoftwareEngineer: {"Data Structures", "Algorithms", "System Design", "Git", "Testing"},
}

var yearBoost = map[string]int{
	"1":        5,
	"2":        10,
	"3":        15,
	"4":        20,
	"graduate": 25,
}

// Service computes dashboard metrics.
type Service struct {
	engine *pathway.Engine
	logger zerolog.Logger
}

// NewService returns a dashboard service backed by the given engine.
func NewService(engine *pathway.Engine, logger zerolog.Logger) *Service {
	return &Service{
		engine: engine,
		logger: logger.With().Str("component", "dashboard").Logger(),
	}
}

// GetMetrics assembles the complete dashboard for an assessment. A nil
// assessment yields the new-student defaults rather than an error.
func (s *Service) GetMetrics(a *models.Assessment) models.DashboardMetrics {
	role := s.engine.DetermineRole(a)

	m := models.DashboardMetrics{
		MatchScore:        s.engine.MatchScore(a, role),
		TopRole:           role,
		CompletionPercent: completionPercent(a),
		NextSkill:         s.nextSkill(a, role),
		Skills:            mapUserSkills(a),
		Activities:        activities(a, role),
		Milestones:        s.milestones(a, role),
	}
	m.WeeklyGoal, m.HoursCompleted = weeklyHours(a)

	s.logger.Debug().
		Str("role", role).
		Int("match_score", m.MatchScore).
		Int("completion", m.CompletionPercent).
		Msg("Dashboard metrics computed")

	return m
}

// completionPercent estimates how far along the student's profile is.
// Submitting the assessment at all is worth 20 points; year of study,
// projects, skills, achievements, and learning style fill in the rest.
func completionPercent(a *models.Assessment) int {
	if a == nil {
		return 25
	}

	completed := 20.0

	switch a.Year {
	case "graduate":
		completed += 20
	case "4":
		completed += 16
	case "3":
		completed += 12
	case "2":
		completed += 8
	case "1":
		completed += 4
	}

	completed += math.Min(float64(a.ProjectsCompleted*5), 20)
	completed += math.Min(float64(len(a.Skills))*2.5, 20)

	if strings.TrimSpace(a.Achievements) != "" {
		completed += 10
	}
	if a.LearningStyle != "" {
		completed += 10
	}

	percent := int(math.Round(completed))
	if percent > maxCompletionPercent {
		percent = maxCompletionPercent
	}
	return percent
}

// mapUserSkills turns the declared skills into progress bars. Progress
// starts at a base of 30 and is boosted by projects, year of study, and
// high ratings in the skill's interest category.
func mapUserSkills(a *models.Assessment) []models.SkillProgress {
	if a == nil {
		return defaultSkills()
	}

	var out []models.SkillProgress
	for _, ts := range trackedSkills {
		if !declared(ts.skill, a.Skills) {
			continue
		}

		progress := 30 + a.ProjectsCompleted*5 + yearBoost[a.Year]

		switch ts.category {
		case "programming":
			if a.ProblemSolving >= 4 {
				progress += 10
			}
		case "analytics":
			if a.DataAnalysis >= 4 {
				progress += 10
			}
		case "design":
			if a.CreativeDesign >= 4 {
				progress += 10
			}
		}

		if progress > maxSkillProgress {
			progress = maxSkillProgress
		}
		out = append(out, models.SkillProgress{Skill: ts.skill, Progress: progress, Color: ts.color})
	}

	if len(out) == 0 {
		return defaultSkills()
	}
	if len(out) > maxSkillBars {
		out = out[:maxSkillBars]
	}
	return out
}

// declared reports whether a tracked skill matches any declared user skill,
// case-insensitively in either substring direction.
func declared(skill string, userSkills []string) bool {
	skillLower := strings.ToLower(skill)
	for _, us := range userSkills {
		usLower := strings.ToLower(us)
		if strings.Contains(usLower, skillLower) || strings.Contains(skillLower, usLower) {
			return true
		}
	}
	return false
}

func defaultSkills() []models.SkillProgress {
	return []models.SkillProgress{
		{Skill: "Python", Progress: 45, Color: "#3b82f6"},
		{Skill: "SQL", Progress: 30, Color: "#10b981"},
		{Skill: "Data Analysis", Progress: 35, Color: "#ec4899"},
	}
}

// nextSkill picks the first skill on the role's recommended track that the
// student has not declared yet.
func (s *Service) nextSkill(a *models.Assessment, role string) string {
	if a == nil {
		return "Python Programming"
	}

	suggested, ok := nextSkillByRole[role]
	if !ok {
		suggested = nextSkillByRole[pathway.FallbackRole]
	}

	for _, skill := range suggested {
		have := false
		skillLower := strings.ToLower(skill)
		for _, us := range a.Skills {
			if strings.Contains(strings.ToLower(us), skillLower) {
				have = true
				break
			}
		}
		if !have {
			return skill
		}
	}
	return suggested[0]
}

// weeklyHours returns the weekly study goal and simulated completed hours.
// Completed hours are modeled at 60% of the goal until real study tracking
// lands.
func weeklyHours(a *models.Assessment) (goal, completed int) {
	if a == nil {
		return 15, 8
	}
	goal = a.WeeklyCommitment
	if goal <= 0 {
		goal = 10
	}
	return goal, goal * 6 / 10
}

// activities templates the recent-activity feed from the assessment.
func activities(a *models.Assessment, role string) []models.Activity {
	if a == nil {
		return defaultActivities()
	}

	out := []models.Activity{
		{ID: 1, Type: "achievement", Title: "🎉 Completed Career Assessment", Time: "Today", Icon: "✅"},
	}

	if declaredExact("Python", a.Skills) {
		out = append(out, models.Activity{
			ID: 2, Type: "progress", Title: "Started: Python for " + role, Time: "1 day ago", Icon: "📚",
		})
	}
	if declaredExact("Machine Learning", a.Skills) {
		out = append(out, models.Activity{
			ID: 3, Type: "completed", Title: "Completed: ML Fundamentals Module", Time: "2 days ago", Icon: "🏆",
		})
	}
	if a.Branch != "" {
		out = append(out, models.Activity{
			ID: 4, Type: "info", Title: fmt.Sprintf("Enrolled in %s program", a.Branch), Time: "This semester", Icon: "🎓",
		})
	}

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func declaredExact(skill string, userSkills []string) bool {
	for _, s := range userSkills {
		if s == skill {
			return true
		}
	}
	return false
}

func defaultActivities() []models.Activity {
	return []models.Activity{
		{ID: 1, Type: "completed", Title: "Completed: Python Basics Module", Time: "2 hours ago", Icon: "✅"},
		{ID: 2, Type: "progress", Title: "Started: SQL Joins & Aggregations", Time: "1 day ago", Icon: "📚"},
		{ID: 3, Type: "achievement", Title: "Earned: Problem Solver Badge", Time: "2 days ago", Icon: "🏆"},
		{ID: 4, Type: "project", Title: "Published: Sales Analysis Dashboard", Time: "3 days ago", Icon: "🚀"},
	}
}

// milestones templates the upcoming-milestones list around the student's
// next skill and target role.
func (s *Service) milestones(a *models.Assessment, role string) []models.Milestone {
	if a == nil {
		return defaultMilestones()
	}

	nextSkill := s.nextSkill(a, role)
	return []models.Milestone{
		{ID: 1, Title: fmt.Sprintf("Master %s", nextSkill), Deadline: "2 weeks", Priority: models.PriorityHigh},
		{ID: 2, Title: fmt.Sprintf("Build First %s Project", role), Deadline: "1 month", Priority: models.PriorityHigh},
		{ID: 3, Title: "Complete 3 Portfolio Projects", Deadline: "2 months", Priority: models.PriorityMedium},
		{ID: 4, Title: "Connect with Industry Mentor", Deadline: "3 months", Priority: models.PriorityLow},
	}
}

func defaultMilestones() []models.Milestone {
	return []models.Milestone{
		{ID: 1, Title: "Complete Python Fundamentals", Deadline: "2 weeks", Priority: models.PriorityHigh},
		{ID: 2, Title: "Build First Portfolio Project", Deadline: "1 month", Priority: models.PriorityMedium},
		{ID: 3, Title: "Connect with Industry Mentor", Deadline: "2 months", Priority: models.PriorityLow},
	}
}
