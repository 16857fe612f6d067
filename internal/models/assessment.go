// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package models

// Assessment is the student's submitted questionnaire. It is immutable once
// submitted; the engine never mutates it.
//
// JSON field names match the payload produced by the assessment form, which
// the frontend also persists client-side.
type Assessment struct {
	// Branch is the student's field of study (e.g. "Computer Science").
	Branch string `json:"branch" validate:"required"`

	// Year is the year of study: "1"-"4" or "graduate".
	Year string `json:"year" validate:"required,oneof=1 2 3 4 graduate"`

	// GPA on either a 10-point or 4-point scale. Non-numeric input is
	// decoded as 0 and scored accordingly (no-throw contract).
	GPA float64 `json:"gpa" validate:"gte=0"`

	// ProjectsCompleted is the number of finished projects.
	ProjectsCompleted int `json:"projectsCompleted" validate:"gte=0"`

	// Skills the student already has, from the form's fixed vocabulary.
	Skills []string `json:"skills"`

	// Achievements is free text (awards, certifications, hackathons).
	Achievements string `json:"achievements"`

	// Interest ratings, each 1-5.
	LogicPuzzles   int `json:"logicPuzzles" validate:"omitempty,min=1,max=5"`
	DataAnalysis   int `json:"dataAnalysis" validate:"omitempty,min=1,max=5"`
	TeamLeadership int `json:"teamLeadership" validate:"omitempty,min=1,max=5"`
	CreativeDesign int `json:"creativeDesign" validate:"omitempty,min=1,max=5"`
	Communication  int `json:"communication" validate:"omitempty,min=1,max=5"`
	ProblemSolving int `json:"problemSolving" validate:"omitempty,min=1,max=5"`

	// LearningStyle is how the student prefers to learn.
	LearningStyle string `json:"learningStyle" validate:"omitempty,oneof=visual hands-on reading interactive"`

	// WeeklyCommitment is the hours per week the student can spend learning.
	WeeklyCommitment int `json:"weeklyCommitment" validate:"gte=0"`

	// CareerGoal is free text describing the target career.
	CareerGoal string `json:"careerGoal"`

	// PreferredIndustries the student wants to work in.
	PreferredIndustries []string `json:"preferredIndustries"`
}

// Interest rating names used by the per-role interest lookup tables.
const (
	InterestLogicPuzzles   = "logicPuzzles"
	InterestDataAnalysis   = "dataAnalysis"
	InterestTeamLeadership = "teamLeadership"
	InterestCreativeDesign = "creativeDesign"
	InterestCommunication  = "communication"
	InterestProblemSolving = "problemSolving"
)

// Interest returns the rating for the named interest, or 0 when unset.
func (a *Assessment) Interest(name string) int {
	switch name {
	case InterestLogicPuzzles:
		return a.LogicPuzzles
	case InterestDataAnalysis:
		return a.DataAnalysis
	case InterestTeamLeadership:
		return a.TeamLeadership
	case InterestCreativeDesign:
		return a.CreativeDesign
	case InterestCommunication:
		return a.Communication
	case InterestProblemSolving:
		return a.ProblemSolving
	default:
		return 0
	}
}
