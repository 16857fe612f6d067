// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package pathway

import (
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/models"
)

// defaultMatchScore is returned when no assessment is available.
const defaultMatchScore = 75

// Match score component weights. They sum to 100 before the final cap.
const (
	skillMatchWeight = 40
	gpaMaxPoints     = 20
	projectsMax      = 15
	interestWeight   = 25

	// maxMatchScore caps the reported score; a perfect 100 would overstate
	// what a questionnaire can establish.
	maxMatchScore = 99
)

var digitsRe = regexp.MustCompile(`\d+`)

// Engine produces career recommendations from assessments.
// It is stateless and safe for concurrent use.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine returns a recommendation engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("component", "pathway").Logger()}
}

// DetermineRole selects the best-fit career role for an assessment.
//
// Career-goal keywords take priority over everything else; when the goal
// text gives no signal, roles are scored from the declared skills. A nil
// assessment yields DefaultRole, and an assessment with no usable signal
// yields FallbackRole.
func (e *Engine) DetermineRole(a *models.Assessment) string {
	if a == nil {
		return DefaultRole
	}

	goal := strings.ToLower(a.CareerGoal)

	// Keyword checks are plain substring matches, so short tokens match
	// loosely ("ml" inside "html"). This mirrors the assessment form's
	// guidance, which asks for goals like "ML engineer" or "data analyst".
	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(goal, s) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("machine learning", "ml", "ai"):
		return RoleMLEngineer
	case contains("data scientist"):
		return RoleDataScientist
	case contains("full stack", "fullstack"):
		return RoleFullStack
	case contains("ui", "ux", "design"):
		return RoleUIUXDesigner
	case contains("software engineer", "swe"):
		return RoleSoftwareEngineer
	case contains("data analyst", "analyst"):
		return RoleDataAnalyst
	}

	return e.roleFromSkills(a.Skills)
}

// roleFromSkills scores roles from the declared skill list. Each skill adds
// fixed points to the roles it signals; the strictly highest score wins with
// ties resolved by canonical role order.
func (e *Engine) roleFromSkills(skills []string) string {
	has := func(name string) bool {
		for _, s := range skills {
			if s == name {
				return true
			}
		}
		return false
	}

	scores := make(map[string]int, len(roleOrder))
	if has("Machine Learning") {
		scores[RoleMLEngineer] += 3
		scores[RoleDataScientist] += 2
	}
	if has("Python") {
		scores[RoleMLEngineer] += 2
		scores[RoleDataScientist] += 2
		scores[RoleDataAnalyst]++
	}
	if has("Data Analysis") {
		scores[RoleDataAnalyst] += 3
		scores[RoleDataScientist] += 2
	}
	if has("SQL") {
		scores[RoleDataAnalyst] += 2
		scores[RoleDataScientist]++
	}
	if has("JavaScript") || has("Web Development") {
		scores[RoleFullStack] += 3
	}
	if has("UI/UX Design") {
		scores[RoleUIUXDesigner] += 3
	}

	best := FallbackRole
	max := 0
	for _, role := range roleOrder {
		if scores[role] > max {
			max = scores[role]
			best = role
		}
	}
	return best
}

// MatchScore computes how well an assessment fits a role, in [0, 99].
//
// Four components: required-skill overlap (up to 40), GPA (up to 20),
// completed projects (up to 15), and interest alignment (up to 25). GPA
// thresholds accept both 10-point and 4-point scales. A nil assessment
// scores the neutral defaultMatchScore.
func (e *Engine) MatchScore(a *models.Assessment, role string) int {
	if a == nil {
		return defaultMatchScore
	}

	profile, ok := catalog[role]
	if !ok {
		profile = catalog[FallbackRole]
		role = FallbackRole
	}

	score := float64(matchedRequiredSkills(a.Skills, profile.RequiredSkills)) /
		float64(len(profile.RequiredSkills)) * skillMatchWeight

	switch gpa := a.GPA; {
	case gpa >= 8.5 || gpa >= 3.7:
		score += gpaMaxPoints
	case gpa >= 7.5 || gpa >= 3.0:
		score += 15
	case gpa >= 6.5 || gpa >= 2.5:
		score += 10
	default:
		score += 5
	}

	score += math.Min(float64(a.ProjectsCompleted*3), projectsMax)

	interests := roleInterests[role]
	sum := 0
	for _, name := range interests {
		sum += a.Interest(name)
	}
	score += float64(sum) / float64(len(interests)*5) * interestWeight

	result := int(math.Round(score))
	if result > maxMatchScore {
		result = maxMatchScore
	}
	return result
}

// matchedRequiredSkills counts how many required skills the user covers.
// A required skill is covered when any user skill is a case-insensitive
// substring of it or vice versa ("SQL" covers "SQL & Data Querying").
func matchedRequiredSkills(userSkills, required []string) int {
	matched := 0
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, skill := range userSkills {
			skillLower := strings.ToLower(skill)
			if strings.Contains(skillLower, reqLower) || strings.Contains(reqLower, skillLower) {
				matched++
				break
			}
		}
	}
	return matched
}

// Personalize annotates a role's curriculum with the student's status per
// skill. Skills the student already has are marked in-progress with a
// deterministic progress value in [40, 70); everything else starts at zero.
func (e *Engine) Personalize(curriculum []models.SkillCategory, userSkills []string) []models.PersonalizedCategory {
	out := make([]models.PersonalizedCategory, 0, len(curriculum))
	for _, cat := range curriculum {
		skills := make([]models.PersonalizedSkill, 0, len(cat.Skills))
		for _, skill := range cat.Skills {
			ps := models.PersonalizedSkill{
				SkillItem: skill,
				Status:    models.SkillStatusNotStarted,
			}
			if userHasSkill(skill.Name, userSkills) {
				ps.Status = models.SkillStatusInProgress
				ps.Progress = startingProgress(skill.Name, userSkills)
			}
			skills = append(skills, ps)
		}
		out = append(out, models.PersonalizedCategory{
			ID:       cat.ID,
			Category: cat.Category,
			Skills:   skills,
		})
	}
	return out
}

// userHasSkill reports whether a curriculum skill is covered by any declared
// user skill: either the user skill appears in the curriculum skill name, or
// the curriculum name's first word appears in the user skill.
func userHasSkill(name string, userSkills []string) bool {
	nameLower := strings.ToLower(name)
	firstWord := strings.SplitN(nameLower, " ", 2)[0]
	for _, s := range userSkills {
		skillLower := strings.ToLower(s)
		if strings.Contains(nameLower, skillLower) || strings.Contains(skillLower, firstWord) {
			return true
		}
	}
	return false
}

// startingProgress derives a stable pseudo-progress in [40, 70) for a skill
// the student already has. Hashing the skill name together with the sorted
// skill list keeps the value fixed per student+skill while still varying
// across skills, so repeated requests render identical pathways.
func startingProgress(skillName string, userSkills []string) int {
	sorted := make([]string, len(userSkills))
	for i, s := range userSkills {
		sorted[i] = strings.ToLower(s)
	}
	sort.Strings(sorted)

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(skillName)))
	for _, s := range sorted {
		h.Write([]byte{'|'})
		h.Write([]byte(s))
	}
	return 40 + int(h.Sum32()%30)
}

// GetCareerPathway assembles the full recommendation for an assessment:
// role, match score, market data, the personalized curriculum, and the
// role's portfolio projects. It never fails; missing input degrades to the
// default role with neutral scoring.
func (e *Engine) GetCareerPathway(a *models.Assessment) models.CareerPathway {
	role := e.DetermineRole(a)
	profile, ok := catalog[role]
	if !ok {
		role = DefaultRole
		profile = catalog[DefaultRole]
	}

	var userSkills []string
	year := ""
	if a != nil {
		userSkills = a.Skills
		year = a.Year
	}

	pathway := models.CareerPathway{
		Role:             role,
		MatchScore:       e.MatchScore(a, role),
		Salary:           profile.Salary,
		Growth:           profile.Growth,
		DemandScore:      profile.DemandScore,
		Industries:       profile.Industries,
		Description:      profile.Description,
		AverageTimeToJob: adjustAverageTime(profile.AverageTime, year),
		SkillPathway:     e.Personalize(profile.SkillPathway, userSkills),
		Projects:         profile.Projects,
	}

	e.logger.Debug().
		Str("role", role).
		Int("match_score", pathway.MatchScore).
		Int("user_skills", len(userSkills)).
		Msg("Career pathway computed")

	return pathway
}

// adjustAverageTime scales the catalog's time-to-job estimate by year of
// study: graduates get the optimistic end of the range, third-year students
// get three extra months on both ends, everyone else gets the range as-is.
func adjustAverageTime(avgTime, year string) string {
	switch year {
	case "graduate":
		low, _, found := strings.Cut(avgTime, "-")
		if found {
			return low + " months"
		}
		return avgTime
	case "3":
		nums := digitsRe.FindAllString(avgTime, -1)
		if len(nums) >= 2 {
			low := atoiOrZero(nums[0]) + 3
			high := atoiOrZero(nums[1]) + 3
			return fmt.Sprintf("%d-%d months", low, high)
		}
		return avgTime
	default:
		return avgTime
	}
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
