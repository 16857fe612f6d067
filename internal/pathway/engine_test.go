// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package pathway

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/models"
)

func testEngine() *Engine {
	return NewEngine(zerolog.Nop())
}

func TestDetermineRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		assessment *models.Assessment
		want       string
	}{
		{
			name:       "nil assessment returns default role",
			assessment: nil,
			want:       DefaultRole,
		},
		{
			name:       "goal machine learning",
			assessment: &models.Assessment{CareerGoal: "I want to build machine learning systems"},
			want:       RoleMLEngineer,
		},
		{
			name:       "goal keywords are case insensitive",
			assessment: &models.Assessment{CareerGoal: "AI researcher"},
			want:       RoleMLEngineer,
		},
		{
			name:       "goal data scientist",
			assessment: &models.Assessment{CareerGoal: "become a data scientist"},
			want:       RoleDataScientist,
		},
		{
			name:       "goal fullstack single word",
			assessment: &models.Assessment{CareerGoal: "fullstack web dev"},
			want:       RoleFullStack,
		},
		{
			name:       "goal ux design",
			assessment: &models.Assessment{CareerGoal: "product ux work"},
			want:       RoleUIUXDesigner,
		},
		{
			name:       "goal software engineer",
			assessment: &models.Assessment{CareerGoal: "software engineer at a startup"},
			want:       RoleSoftwareEngineer,
		},
		{
			name:       "goal analyst",
			assessment: &models.Assessment{CareerGoal: "business analyst"},
			want:       RoleDataAnalyst,
		},
		{
			name:       "goal takes priority over skills",
			assessment: &models.Assessment{CareerGoal: "data scientist", Skills: []string{"JavaScript"}},
			want:       RoleDataScientist,
		},
		{
			name:       "skills machine learning",
			assessment: &models.Assessment{Skills: []string{"Machine Learning"}},
			want:       RoleMLEngineer,
		},
		{
			name:       "skills sql and data analysis",
			assessment: &models.Assessment{Skills: []string{"SQL", "Data Analysis"}},
			want:       RoleDataAnalyst,
		},
		{
			name:       "skills javascript",
			assessment: &models.Assessment{Skills: []string{"JavaScript"}},
			want:       RoleFullStack,
		},
		{
			name:       "skills web development",
			assessment: &models.Assessment{Skills: []string{"Web Development"}},
			want:       RoleFullStack,
		},
		{
			name:       "skills ui ux design",
			assessment: &models.Assessment{Skills: []string{"UI/UX Design"}},
			want:       RoleUIUXDesigner,
		},
		{
			name:       "no signal falls back to software engineer",
			assessment: &models.Assessment{Branch: "Computer Science"},
			want:       FallbackRole,
		},
		{
			name:       "unrecognized skills fall back to software engineer",
			assessment: &models.Assessment{Skills: []string{"Cooking", "Chess"}},
			want:       FallbackRole,
		},
	}

	e := testEngine()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.DetermineRole(tt.assessment); got != tt.want {
				t.Errorf("DetermineRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineRoleDeterministicTie(t *testing.T) {
	t.Parallel()

	// Python alone scores ML Engineer and Data Scientist 2 each; the
	// canonical role order must break the tie the same way every time.
	e := testEngine()
	a := &models.Assessment{Skills: []string{"Python"}}
	first := e.DetermineRole(a)
	for i := 0; i < 50; i++ {
		if got := e.DetermineRole(a); got != first {
			t.Fatalf("DetermineRole() not deterministic: %q then %q", first, got)
		}
	}
	if first != RoleMLEngineer {
		t.Errorf("DetermineRole() = %q, want %q", first, RoleMLEngineer)
	}
}

func TestMatchScoreWorkedExample(t *testing.T) {
	t.Parallel()

	// 2 of 4 required skills (20) + GPA 8.7 (20) + 4 projects (12) +
	// interests 13/15 (21.67) = 73.67, rounds to 74.
	a := &models.Assessment{
		GPA:               8.7,
		ProjectsCompleted: 4,
		Skills:            []string{"SQL", "Excel"},
		DataAnalysis:      5,
		Communication:     4,
		ProblemSolving:    4,
	}

	if got := testEngine().MatchScore(a, RoleDataAnalyst); got != 74 {
		t.Errorf("MatchScore() = %d, want 74", got)
	}
}

func TestMatchScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		assessment *models.Assessment
		role       string
		want       int
	}{
		{
			name:       "nil assessment scores neutral default",
			assessment: nil,
			role:       RoleMLEngineer,
			want:       75,
		},
		{
			name: "perfect assessment capped at 99",
			assessment: &models.Assessment{
				GPA:               9.5,
				ProjectsCompleted: 10,
				Skills:            []string{"Python", "Machine Learning", "Statistics", "Data Analysis"},
				ProblemSolving:    5,
				LogicPuzzles:      5,
				DataAnalysis:      5,
			},
			role: RoleMLEngineer,
			want: 99,
		},
		{
			name:       "empty assessment gets floor gpa points only",
			assessment: &models.Assessment{},
			role:       RoleSoftwareEngineer,
			want:       5,
		},
		{
			name: "four point gpa scale accepted",
			assessment: &models.Assessment{
				GPA: 3.8,
			},
			role: RoleSoftwareEngineer,
			want: 20,
		},
	}

	e := testEngine()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.MatchScore(tt.assessment, tt.role); got != tt.want {
				t.Errorf("MatchScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchScoreProjectsMonotonic(t *testing.T) {
	t.Parallel()

	e := testEngine()
	prev := -1
	for projects := 0; projects <= 8; projects++ {
		a := &models.Assessment{GPA: 7.0, ProjectsCompleted: projects}
		got := e.MatchScore(a, RoleSoftwareEngineer)
		if got < prev {
			t.Fatalf("MatchScore() decreased from %d to %d at %d projects", prev, got, projects)
		}
		prev = got
	}

	// The project component saturates at 5 projects.
	five := e.MatchScore(&models.Assessment{ProjectsCompleted: 5}, RoleSoftwareEngineer)
	twenty := e.MatchScore(&models.Assessment{ProjectsCompleted: 20}, RoleSoftwareEngineer)
	if five != twenty {
		t.Errorf("project points not capped: 5 projects = %d, 20 projects = %d", five, twenty)
	}
}

func TestMatchScoreBounds(t *testing.T) {
	t.Parallel()

	e := testEngine()
	assessments := []*models.Assessment{
		nil,
		{},
		{GPA: 10, ProjectsCompleted: 100, Skills: Roles()},
		{Skills: []string{"Python", "SQL", "Excel", "Data Visualization", "Data Analysis"}},
	}
	for _, a := range assessments {
		for _, role := range Roles() {
			got := e.MatchScore(a, role)
			if got < 0 || got > 99 {
				t.Errorf("MatchScore(%+v, %q) = %d, want within [0, 99]", a, role, got)
			}
		}
	}
}

func TestMatchScoreUnknownRoleUsesFallbackProfile(t *testing.T) {
	t.Parallel()

	e := testEngine()
	a := &models.Assessment{GPA: 8.0, ProjectsCompleted: 2, ProblemSolving: 4}
	if got, want := e.MatchScore(a, "Astronaut"), e.MatchScore(a, FallbackRole); got != want {
		t.Errorf("MatchScore(unknown role) = %d, want %d", got, want)
	}
}

func TestPersonalize(t *testing.T) {
	t.Parallel()

	e := testEngine()
	profile, _ := Profile(RoleDataAnalyst)
	got := e.Personalize(profile.SkillPathway, []string{"Python", "SQL"})

	if len(got) != len(profile.SkillPathway) {
		t.Fatalf("Personalize() returned %d categories, want %d", len(got), len(profile.SkillPathway))
	}

	byName := map[string]models.PersonalizedSkill{}
	for _, cat := range got {
		for _, s := range cat.Skills {
			byName[s.Name] = s
		}
	}

	for _, matched := range []string{"SQL & Database Fundamentals", "Python Basics"} {
		s, ok := byName[matched]
		if !ok {
			t.Fatalf("skill %q missing from personalized pathway", matched)
		}
		if s.Status != models.SkillStatusInProgress {
			t.Errorf("skill %q status = %q, want %q", matched, s.Status, models.SkillStatusInProgress)
		}
		if s.Progress < 40 || s.Progress >= 70 {
			t.Errorf("skill %q progress = %d, want within [40, 70)", matched, s.Progress)
		}
	}

	for _, unmatched := range []string{"Excel Advanced Functions", "Business Communication"} {
		s, ok := byName[unmatched]
		if !ok {
			t.Fatalf("skill %q missing from personalized pathway", unmatched)
		}
		if s.Status != models.SkillStatusNotStarted {
			t.Errorf("skill %q status = %q, want %q", unmatched, s.Status, models.SkillStatusNotStarted)
		}
		if s.Progress != 0 {
			t.Errorf("skill %q progress = %d, want 0", unmatched, s.Progress)
		}
	}
}

func TestPersonalizeDeterministic(t *testing.T) {
	t.Parallel()

	e := testEngine()
	profile, _ := Profile(RoleMLEngineer)
	skills := []string{"Python", "Statistics", "Machine Learning"}

	first := e.Personalize(profile.SkillPathway, skills)
	for i := 0; i < 10; i++ {
		if again := e.Personalize(profile.SkillPathway, skills); !reflect.DeepEqual(first, again) {
			t.Fatalf("Personalize() not deterministic on iteration %d", i)
		}
	}

	// Skill order must not change the outcome.
	reordered := e.Personalize(profile.SkillPathway, []string{"Machine Learning", "Python", "Statistics"})
	if !reflect.DeepEqual(first, reordered) {
		t.Error("Personalize() depends on user skill order")
	}
}

func TestPersonalizeNoSkills(t *testing.T) {
	t.Parallel()

	e := testEngine()
	profile, _ := Profile(RoleFullStack)
	for _, cat := range e.Personalize(profile.SkillPathway, nil) {
		for _, s := range cat.Skills {
			if s.Status != models.SkillStatusNotStarted || s.Progress != 0 {
				t.Errorf("skill %q = (%q, %d), want (not-started, 0)", s.Name, s.Status, s.Progress)
			}
		}
	}
}

func TestGetCareerPathway(t *testing.T) {
	t.Parallel()

	e := testEngine()
	a := &models.Assessment{
		Year:              "2",
		GPA:               8.0,
		ProjectsCompleted: 3,
		Skills:            []string{"Python", "Machine Learning"},
		CareerGoal:        "machine learning engineer",
		ProblemSolving:    5,
		LogicPuzzles:      4,
		DataAnalysis:      4,
	}

	got := e.GetCareerPathway(a)

	if got.Role != RoleMLEngineer {
		t.Fatalf("Role = %q, want %q", got.Role, RoleMLEngineer)
	}

	profile, _ := Profile(RoleMLEngineer)
	if got.Salary != profile.Salary || got.Growth != profile.Growth {
		t.Errorf("market data mismatch: got (%q, %q)", got.Salary, got.Growth)
	}
	if got.DemandScore != profile.DemandScore {
		t.Errorf("DemandScore = %d, want %d", got.DemandScore, profile.DemandScore)
	}
	if got.AverageTimeToJob != "12-18 months" {
		t.Errorf("AverageTimeToJob = %q, want unchanged range", got.AverageTimeToJob)
	}
	if len(got.SkillPathway) != 3 {
		t.Errorf("SkillPathway has %d categories, want 3", len(got.SkillPathway))
	}
	if len(got.Projects) != 3 {
		t.Errorf("Projects has %d entries, want 3", len(got.Projects))
	}
	if got.MatchScore != e.MatchScore(a, RoleMLEngineer) {
		t.Errorf("MatchScore = %d, inconsistent with MatchScore()", got.MatchScore)
	}
}

func TestGetCareerPathwayNilAssessment(t *testing.T) {
	t.Parallel()

	got := testEngine().GetCareerPathway(nil)

	if got.Role != DefaultRole {
		t.Errorf("Role = %q, want %q", got.Role, DefaultRole)
	}
	if got.MatchScore != 75 {
		t.Errorf("MatchScore = %d, want 75", got.MatchScore)
	}
	for _, cat := range got.SkillPathway {
		for _, s := range cat.Skills {
			if s.Status != models.SkillStatusNotStarted {
				t.Errorf("skill %q status = %q, want not-started", s.Name, s.Status)
			}
		}
	}
}

func TestAdjustAverageTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		avgTime string
		year    string
		want    string
	}{
		{"graduate gets optimistic end", "12-18 months", "graduate", "12 months"},
		{"third year gets three extra months", "12-18 months", "3", "15-21 months"},
		{"fourth year unchanged", "8-14 months", "4", "8-14 months"},
		{"first year unchanged", "6-12 months", "1", "6-12 months"},
		{"empty year unchanged", "6-10 months", "", "6-10 months"},
		{"graduate single value unchanged", "9 months", "graduate", "9 months"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := adjustAverageTime(tt.avgTime, tt.year); got != tt.want {
				t.Errorf("adjustAverageTime(%q, %q) = %q, want %q", tt.avgTime, tt.year, got, tt.want)
			}
		})
	}
}
