// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package models

// SkillProgress is one bar on the dashboard's skill progress chart.
type SkillProgress struct {
	Skill    string `json:"skill"`
	Progress int    `json:"progress"`
	Color    string `json:"color"`
}

// Activity is one entry in the dashboard's recent activity feed.
// Activities are templated from the assessment on every render; there is no
// activity history store.
type Activity struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Icon  string `json:"icon"`
}

// Milestone is one entry in the dashboard's upcoming milestones list.
type Milestone struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

// DashboardMetrics is the derived view the dashboard renders for a student.
// Like CareerPathway it is recomputed per call from the assessment alone.
type DashboardMetrics struct {
	MatchScore        int             `json:"matchScore"`
	TopRole           string          `json:"topRole"`
	CompletionPercent int             `json:"completionPercent"`
	NextSkill         string          `json:"nextSkill"`
	Skills            []SkillProgress `json:"skills"`
	WeeklyGoal        int             `json:"weeklyGoal"`
	HoursCompleted    int             `json:"hoursCompleted"`
	Activities        []Activity      `json:"activities"`
	Milestones        []Milestone     `json:"milestones"`
}
