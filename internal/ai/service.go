// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/skillsync/internal/models"
)

const chatSystemPrompt = `You are SkillSync AI, a friendly career guidance assistant for students. You help with:
- Career advice and exploration
- Skill development guidance
- Learning resource recommendations
- Job search tips
- Resume and portfolio advice
- Interview preparation

Be encouraging, practical, and specific. Keep responses concise but helpful.`

// maxHistoryTurns bounds how much client-supplied conversation history is
// forwarded upstream per request.
const maxHistoryTurns = 20

// Service exposes the career-guidance AI operations.
type Service struct {
	client *Client
	logger zerolog.Logger
}

// NewService wraps an LLM client with the guidance prompt templates.
func NewService(client *Client, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger.With().Str("component", "ai").Logger(),
	}
}

// Chat answers a free-form career question, continuing the supplied
// conversation history. Responses are plain text.
func (s *Service) Chat(ctx context.Context, message string, history []Message) (string, error) {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: chatSystemPrompt})
	for _, m := range history {
		// Only relay well-formed user/assistant turns; clients cannot
		// inject additional system prompts.
		if m.Role == "user" || m.Role == "assistant" {
			messages = append(messages, m)
		}
	}
	messages = append(messages, Message{Role: "user", Content: message})

	return s.client.complete(ctx, "chat", completionParams{
		messages:    messages,
		temperature: 0.8,
		maxTokens:   500,
	})
}

// CareerRecommendations asks for role recommendations, strengths, gaps, and
// next steps as a structured JSON document.
func (s *Service) CareerRecommendations(ctx context.Context, a *models.Assessment) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`You are a career counselor AI. Based on the following student assessment data, provide personalized career recommendations.

Student Profile:
- Branch: %s
- Year: %s
- GPA: %g
- Projects Completed: %d
- Skills: %s
- Career Goal: %s
- Preferred Industries: %s
- Interest Ratings (1-5):
  - Logic/Algorithms: %d
  - Data Analysis: %d
  - Team Leadership: %d
  - Creative Design: %d
  - Communication: %d
  - Problem Solving: %d

Provide:
1. Top 3 recommended career roles (with match percentage)
2. Key strengths based on their profile
3. Skill gaps they should address
4. 3 actionable next steps

Format as JSON with this structure:
{
  "recommendedRoles": [
    {"role": "Role Name", "matchScore": 85, "reason": "Why this fits"}
  ],
  "strengths": ["strength1", "strength2"],
  "skillGaps": ["gap1", "gap2"],
  "nextSteps": ["step1", "step2", "step3"]
}`,
		a.Branch, a.Year, a.GPA, a.ProjectsCompleted,
		joinOr(a.Skills, "None specified"), a.CareerGoal,
		joinOr(a.PreferredIndustries, "None"),
		a.LogicPuzzles, a.DataAnalysis, a.TeamLeadership,
		a.CreativeDesign, a.Communication, a.ProblemSolving)

	return s.jsonCompletion(ctx, "career_recommendations", completionParams{
		messages: []Message{
			{Role: "system", Content: "You are an expert career counselor specializing in tech and engineering careers. Provide practical, actionable advice."},
			{Role: "user", Content: prompt},
		},
		temperature: 0.7,
		maxTokens:   1000,
		jsonObject:  true,
	})
}

// LearningPath asks for a 12-week study plan tailored to the student's
// existing skills and weekly time budget.
func (s *Service) LearningPath(ctx context.Context, role string, currentSkills []string, timeCommitment int) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Create a detailed 12-week learning path for someone who wants to become a %s.

Current Skills: %s
Weekly Time Available: %d hours

Provide a week-by-week breakdown with:
- Week number
- Focus area
- Specific topics to learn
- Recommended resources
- Practice projects

Format as JSON array:
[
  {
    "week": 1,
    "focusArea": "Area name",
    "topics": ["topic1", "topic2"],
    "estimatedHours": 10,
    "projects": ["project description"]
  }
]`, role, strings.Join(currentSkills, ", "), timeCommitment)

	return s.jsonCompletion(ctx, "learning_path", completionParams{
		messages: []Message{
			{Role: "system", Content: "You are an expert learning path designer. Create practical, achievable learning plans."},
			{Role: "user", Content: prompt},
		},
		temperature: 0.7,
		maxTokens:   2000,
		jsonObject:  true,
	})
}

// ProjectIdeas asks for five portfolio project ideas at the requested
// difficulty.
func (s *Service) ProjectIdeas(ctx context.Context, role string, skills []string, difficulty string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Generate 5 project ideas for someone learning to become a %s.

Their current skills: %s
Difficulty level: %s

For each project provide:
- Project title
- Brief description (2-3 sentences)
- Key skills practiced
- Estimated time to complete
- Deliverables

Format as JSON array.`, role, strings.Join(skills, ", "), difficulty)

	return s.jsonCompletion(ctx, "project_ideas", completionParams{
		messages: []Message{
			{Role: "system", Content: "You are a project idea generator for portfolio building. Create practical, impressive projects."},
			{Role: "user", Content: prompt},
		},
		temperature: 0.9,
		maxTokens:   1500,
		jsonObject:  true,
	})
}

// SkillGaps asks for a gap analysis between the student's current skills
// and their target role.
func (s *Service) SkillGaps(ctx context.Context, targetRole string, currentSkills []string, a *models.Assessment) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Analyze skill gaps for someone wanting to become a %s.

Current skills: %s
Assessment scores (1-5):
- Problem Solving: %d
- Data Analysis: %d
- Team Leadership: %d
- Communication: %d

Provide:
1. Critical skills they're missing
2. Skills they should improve
3. Priority order for learning
4. Estimated time to bridge gaps

Format as JSON.`,
		targetRole, strings.Join(currentSkills, ", "),
		a.ProblemSolving, a.DataAnalysis, a.TeamLeadership, a.Communication)

	return s.jsonCompletion(ctx, "skill_gaps", completionParams{
		messages: []Message{
			{Role: "system", Content: "You are a skill gap analyzer. Be honest but encouraging."},
			{Role: "user", Content: prompt},
		},
		temperature: 0.7,
		maxTokens:   800,
		jsonObject:  true,
	})
}

// jsonCompletion runs a completion expected to return a JSON document and
// validates it before passing it through untouched.
func (s *Service) jsonCompletion(ctx context.Context, operation string, params completionParams) (json.RawMessage, error) {
	content, err := s.client.complete(ctx, operation, params)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(content)
	if !json.Valid([]byte(trimmed)) {
		s.logger.Warn().Str("operation", operation).Msg("LLM returned invalid JSON")
		return nil, fmt.Errorf("llm returned malformed JSON for %s", operation)
	}
	return json.RawMessage(trimmed), nil
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
