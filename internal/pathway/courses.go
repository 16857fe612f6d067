// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package pathway

import "github.com/tomtom215/skillsync/internal/models"

// courseCatalog holds the curated external course recommendations per role.
var courseCatalog = map[string][]models.Course{
	RoleMLEngineer: {
		{
			Title:    "Machine Learning Specialization",
			Platform: "Coursera",
			Provider: "Andrew Ng, Stanford",
			Duration: "3 months",
			Rating:   4.9,
			Level:    "Beginner",
			Price:    "Free (Audit)",
			Skills:   []string{"Machine Learning", "Python", "Neural Networks"},
		},
		{
			Title:    "Deep Learning Specialization",
			Platform: "Coursera",
			Provider: "deeplearning.ai",
			Duration: "5 months",
			Rating:   4.9,
			Level:    "Intermediate",
			Price:    "$49/month",
			Skills:   []string{"Deep Learning", "TensorFlow", "CNN", "RNN"},
		},
		{
			Title:    "MLOps Fundamentals",
			Platform: "Udacity",
			Provider: "Google Cloud",
			Duration: "4 months",
			Rating:   4.7,
			Level:    "Advanced",
			Price:    "$399/month",
			Skills:   []string{"MLOps", "Deployment", "CI/CD"},
		},
	},
	RoleDataScientist: {
		{
			Title:    "Python for Data Science",
			Platform: "Coursera",
			Provider: "IBM",
			Duration: "4 weeks",
			Rating:   4.8,
			Level:    "Beginner",
			Price:    "Free (Audit)",
			Skills:   []string{"Python", "Pandas", "NumPy"},
		},
		{
			Title:    "Statistics for Data Science",
			Platform: "edX",
			Provider: "MIT",
			Duration: "6 weeks",
			Rating:   4.9,
			Level:    "Intermediate",
			Price:    "$99 (Verified)",
			Skills:   []string{"Statistics", "Probability", "Hypothesis Testing"},
		},
		{
			Title:    "Advanced Data Science",
			Platform: "DataCamp",
			Provider: "DataCamp",
			Duration: "3 months",
			Rating:   4.7,
			Level:    "Advanced",
			Price:    "$25/month",
			Skills:   []string{"ML", "Feature Engineering", "Model Selection"},
		},
	},
	RoleDataAnalyst: {
		{
			Title:    "SQL for Data Science",
			Platform: "Coursera",
			Provider: "UC Davis",
			Duration: "4 weeks",
			Rating:   4.8,
			Level:    "Beginner",
			Price:    "Free (Audit)",
			Skills:   []string{"SQL", "Database Design"},
		},
		{
			Title:    "Data Visualization with Tableau",
			Platform: "Udemy",
			Provider: "Kirill Eremenko",
			Duration: "9 hours",
			Rating:   4.6,
			Level:    "Intermediate",
			Price:    "$49.99",
			Skills:   []string{"Tableau", "Data Viz", "Storytelling"},
		},
		{
			Title:    "Excel Skills for Business",
			Platform: "Coursera",
			Provider: "Macquarie University",
			Duration: "6 months",
			Rating:   4.8,
			Level:    "Beginner",
			Price:    "Free (Audit)",
			Skills:   []string{"Excel", "Pivot Tables", "Data Analysis"},
		},
	},
	RoleFullStack: {
		{
			Title:    "The Complete Web Developer Bootcamp",
			Platform: "Udemy",
			Provider: "Angela Yu",
			Duration: "65 hours",
			Rating:   4.7,
			Level:    "Beginner",
			Price:    "$49.99",
			Skills:   []string{"HTML", "CSS", "JavaScript", "Node.js"},
		},
		{
			Title:    "React - The Complete Guide",
			Platform: "Udemy",
			Provider: "Maximilian Schwarzmüller",
			Duration: "48 hours",
			Rating:   4.8,
			Level:    "Intermediate",
			Price:    "$49.99",
			Skills:   []string{"React", "Hooks", "Redux"},
		},
		{
			Title:    "Node.js, Express, MongoDB",
			Platform: "Udemy",
			Provider: "Jonas Schmedtmann",
			Duration: "42 hours",
			Rating:   4.8,
			Level:    "Intermediate",
			Price:    "$49.99",
			Skills:   []string{"Node.js", "Express", "MongoDB", "REST API"},
		},
	},
	RoleUIUXDesigner: {
		{
			Title:    "Google UX Design Certificate",
			Platform: "Coursera",
			Provider: "Google",
			Duration: "6 months",
			Rating:   4.8,
			Level:    "Beginner",
			Price:    "$49/month",
			Skills:   []string{"UX Design", "Figma", "Wireframing"},
		},
		{
			Title:    "UI Design Fundamentals",
			Platform: "Udemy",
			Provider: "Joe Natoli",
			Duration: "7 hours",
			Rating:   4.7,
			Level:    "Beginner",
			Price:    "$49.99",
			Skills:   []string{"UI Design", "Design Principles", "Typography"},
		},
		{
			Title:    "Advanced Figma: Design Systems",
			Platform: "Skillshare",
			Provider: "Pablo Stanley",
			Duration: "3 hours",
			Rating:   4.8,
			Level:    "Advanced",
			Price:    "$32/month",
			Skills:   []string{"Figma", "Design Systems", "Components"},
		},
	},
	RoleSoftwareEngineer: {
		{
			Title:    "Data Structures and Algorithms",
			Platform: "Coursera",
			Provider: "UC San Diego",
			Duration: "6 months",
			Rating:   4.7,
			Level:    "Intermediate",
			Price:    "$49/month",
			Skills:   []string{"Algorithms", "Data Structures", "Problem Solving"},
		},
		{
			Title:    "System Design Interview",
			Platform: "Educative",
			Provider: "Educative",
			Duration: "3 months",
			Rating:   4.8,
			Level:    "Advanced",
			Price:    "$59/month",
			Skills:   []string{"System Design", "Scalability", "Architecture"},
		},
		{
			Title:    "Clean Code Fundamentals",
			Platform: "Pluralsight",
			Provider: "Robert Martin",
			Duration: "5 hours",
			Rating:   4.9,
			Level:    "Intermediate",
			Price:    "$29/month",
			Skills:   []string{"Clean Code", "Refactoring", "Design Patterns"},
		},
	},
}

// CoursesFor returns the recommended courses for a role, falling back to the
// Software Engineer list for unknown roles.
func CoursesFor(role string) []models.Course {
	if courses, ok := courseCatalog[role]; ok {
		return courses
	}
	return courseCatalog[FallbackRole]
}
