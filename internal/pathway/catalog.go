// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package pathway

import "github.com/tomtom215/skillsync/internal/models"

// Supported career roles. These are the only keys present in the catalog;
// every scoring table in this package is keyed by the same set.
const (
	RoleMLEngineer       = "Machine Learning Engineer"
	RoleDataScientist    = "Data Scientist"
	RoleDataAnalyst      = "Data Analyst"
	RoleFullStack        = "Full Stack Developer"
	RoleUIUXDesigner     = "UI/UX Designer"
	RoleSoftwareEngineer = "Software Engineer"
)

// FallbackRole is used when a requested role is not in the catalog and when
// skill-based scoring produces no signal at all.
const FallbackRole = RoleSoftwareEngineer

// DefaultRole is recommended when no assessment has been submitted.
const DefaultRole = RoleDataAnalyst

// roleOrder fixes the iteration order for skill-based role scoring so that
// ties resolve deterministically (first listed wins).
var roleOrder = []string{
	RoleMLEngineer,
	RoleDataScientist,
	RoleDataAnalyst,
	RoleFullStack,
	RoleUIUXDesigner,
	RoleSoftwareEngineer,
}

// catalog is the static career reference data. Loaded once, never mutated;
// callers must treat returned profiles as read-only.
var catalog = map[string]models.RoleProfile{
	RoleMLEngineer: {
		Salary:      "$100,000 - $180,000",
		Growth:      "+32%",
		DemandScore: 5,
		Industries:  []string{"Tech/Software", "Research", "Healthcare", "Finance/Banking", "Autonomous Systems"},
		Description: "Build and deploy machine learning models and AI systems to solve complex real-world problems",
		AverageTime: "12-18 months",
		RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "Data Analysis"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Foundation",
				Skills: []models.SkillItem{
					{Name: "Python Programming", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Mathematics for ML (Linear Algebra, Calculus)", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "Statistics & Probability", Duration: "6 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       2,
				Category: "Core ML",
				Skills: []models.SkillItem{
					{Name: "Supervised Learning Algorithms", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "Unsupervised Learning & Clustering", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Neural Networks & Deep Learning", Duration: "10 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "Advanced",
				Skills: []models.SkillItem{
					{Name: "Computer Vision (CNNs)", Duration: "8 weeks", Priority: models.PriorityMedium},
					{Name: "Natural Language Processing", Duration: "8 weeks", Priority: models.PriorityMedium},
					{Name: "Model Deployment (MLOps)", Duration: "6 weeks", Priority: models.PriorityHigh},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Image Classification System",
				Description:  "Build a CNN model to classify images with 95%+ accuracy",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "TensorFlow", "CNN"},
				Deliverables: []string{"Trained Model", "API", "Demo App"},
			},
			{
				Title:        "Sentiment Analysis Tool",
				Description:  "Create an NLP model to analyze sentiment in social media posts",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "NLP", "LSTM"},
				Deliverables: []string{"Model", "Web Interface", "Analysis Report"},
			},
			{
				Title:        "Recommendation Engine",
				Description:  "Build a collaborative filtering system like Netflix recommendations",
				Difficulty:   "Advanced",
				Duration:     "4 weeks",
				Skills:       []string{"Python", "ML", "Matrix Factorization"},
				Deliverables: []string{"Algorithm", "API", "Performance Metrics"},
			},
		},
	},

	RoleDataScientist: {
		Salary:      "$95,000 - $165,000",
		Growth:      "+28%",
		DemandScore: 5,
		Industries:  []string{"Tech/Software", "Finance/Banking", "Healthcare", "E-commerce", "Research"},
		Description: "Apply advanced analytics, statistical modeling, and machine learning to extract insights and drive business decisions",
		AverageTime: "10-16 months",
		RequiredSkills: []string{"Python", "Statistics", "Machine Learning", "Data Analysis"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Foundation",
				Skills: []models.SkillItem{
					{Name: "Python for Data Science", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Statistics & Hypothesis Testing", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "SQL & Data Querying", Duration: "4 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       2,
				Category: "Core Analytics",
				Skills: []models.SkillItem{
					{Name: "Exploratory Data Analysis (EDA)", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Data Visualization (Matplotlib, Seaborn)", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Feature Engineering", Duration: "6 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "Advanced",
				Skills: []models.SkillItem{
					{Name: "Machine Learning Algorithms", Duration: "10 weeks", Priority: models.PriorityHigh},
					{Name: "A/B Testing & Experimentation", Duration: "4 weeks", Priority: models.PriorityMedium},
					{Name: "Big Data Tools (Spark, Hadoop)", Duration: "6 weeks", Priority: models.PriorityMedium},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Customer Churn Prediction",
				Description:  "Build a predictive model to identify customers likely to leave",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "ML", "Feature Engineering"},
				Deliverables: []string{"Model", "Analysis Report", "Business Recommendations"},
			},
			{
				Title:        "Sales Forecasting Dashboard",
				Description:  "Create time series forecasting model with interactive visualization",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "Time Series", "Tableau"},
				Deliverables: []string{"Model", "Dashboard", "Documentation"},
			},
			{
				Title:        "Market Basket Analysis",
				Description:  "Discover product associations using association rule mining",
				Difficulty:   "Advanced",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "Apriori", "Data Mining"},
				Deliverables: []string{"Analysis", "Recommendations", "Visualization"},
			},
		},
	},

	RoleDataAnalyst: {
		Salary:      "$70,000 - $120,000",
		Growth:      "+22%",
		DemandScore: 5,
		Industries:  []string{"Tech/Software", "Finance/Banking", "Healthcare", "E-commerce", "Consulting"},
		Description: "Analyze complex data sets to extract actionable insights, create visualizations, and support data-driven decision making",
		AverageTime: "6-12 months",
		RequiredSkills: []string{"SQL", "Python", "Data Visualization", "Excel"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Foundation",
				Skills: []models.SkillItem{
					{Name: "SQL & Database Fundamentals", Duration: "5 weeks", Priority: models.PriorityHigh},
					{Name: "Excel Advanced Functions", Duration: "3 weeks", Priority: models.PriorityHigh},
					{Name: "Python Basics", Duration: "4 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       2,
				Category: "Core Technical",
				Skills: []models.SkillItem{
					{Name: "Data Cleaning & Preprocessing", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Data Visualization (Tableau/PowerBI)", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Statistics Fundamentals", Duration: "6 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "Business Skills",
				Skills: []models.SkillItem{
					{Name: "Business Communication", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Stakeholder Management", Duration: "3 weeks", Priority: models.PriorityMedium},
					{Name: "Data Storytelling", Duration: "3 weeks", Priority: models.PriorityHigh},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Sales Performance Dashboard",
				Description:  "Build interactive dashboard analyzing sales trends across regions",
				Difficulty:   "Beginner",
				Duration:     "2 weeks",
				Skills:       []string{"SQL", "Tableau", "Excel"},
				Deliverables: []string{"Dashboard", "SQL Queries", "Insights Report"},
			},
			{
				Title:        "Customer Segmentation Analysis",
				Description:  "Segment customers based on behavior and demographics",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Python", "Clustering", "Visualization"},
				Deliverables: []string{"Analysis", "Segments", "Recommendations"},
			},
			{
				Title:        "A/B Test Analysis",
				Description:  "Design and analyze A/B test to evaluate website changes",
				Difficulty:   "Advanced",
				Duration:     "2 weeks",
				Skills:       []string{"Statistics", "Python", "Hypothesis Testing"},
				Deliverables: []string{"Test Design", "Statistical Analysis", "Executive Summary"},
			},
		},
	},

	RoleFullStack: {
		Salary:      "$80,000 - $145,000",
		Growth:      "+23%",
		DemandScore: 5,
		Industries:  []string{"Tech/Software", "Startups", "E-commerce", "SaaS", "Consulting"},
		Description: "Build complete web applications from frontend UI to backend APIs and databases",
		AverageTime: "8-14 months",
		RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "APIs"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Frontend",
				Skills: []models.SkillItem{
					{Name: "HTML, CSS, JavaScript", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "React.js Fundamentals", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "State Management (Redux/Context)", Duration: "4 weeks", Priority: models.PriorityMedium},
				},
			},
			{
				ID:       2,
				Category: "Backend",
				Skills: []models.SkillItem{
					{Name: "Node.js & Express", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "RESTful API Design", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "SQL & NoSQL Databases", Duration: "6 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "DevOps & Tools",
				Skills: []models.SkillItem{
					{Name: "Git & GitHub", Duration: "2 weeks", Priority: models.PriorityHigh},
					{Name: "Docker Basics", Duration: "4 weeks", Priority: models.PriorityMedium},
					{Name: "CI/CD & Deployment", Duration: "4 weeks", Priority: models.PriorityMedium},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Task Management App",
				Description:  "Build a full-stack todo app with authentication",
				Difficulty:   "Beginner",
				Duration:     "3 weeks",
				Skills:       []string{"React", "Node.js", "MongoDB"},
				Deliverables: []string{"Frontend", "Backend API", "Deployed App"},
			},
			{
				Title:        "E-commerce Platform",
				Description:  "Create online store with cart, payments, and admin panel",
				Difficulty:   "Intermediate",
				Duration:     "6 weeks",
				Skills:       []string{"React", "Node.js", "Stripe", "PostgreSQL"},
				Deliverables: []string{"Full App", "Payment Integration", "Admin Dashboard"},
			},
			{
				Title:        "Real-time Chat Application",
				Description:  "Build chat app with WebSockets and real-time messaging",
				Difficulty:   "Advanced",
				Duration:     "4 weeks",
				Skills:       []string{"React", "Socket.io", "Redis", "Node.js"},
				Deliverables: []string{"Chat App", "Real-time Features", "Scalable Backend"},
			},
		},
	},

	RoleUIUXDesigner: {
		Salary:      "$70,000 - $130,000",
		Growth:      "+18%",
		DemandScore: 4,
		Industries:  []string{"Tech/Software", "E-commerce", "Gaming", "Startups", "Design Agencies"},
		Description: "Design intuitive user interfaces and create exceptional user experiences for digital products",
		AverageTime: "6-10 months",
		RequiredSkills: []string{"Figma", "UI Design", "User Research", "Prototyping"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Foundation",
				Skills: []models.SkillItem{
					{Name: "Design Principles & Theory", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Figma/Adobe XD Mastery", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Typography & Color Theory", Duration: "3 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       2,
				Category: "UX Research",
				Skills: []models.SkillItem{
					{Name: "User Research Methods", Duration: "5 weeks", Priority: models.PriorityHigh},
					{Name: "Information Architecture", Duration: "4 weeks", Priority: models.PriorityHigh},
					{Name: "Wireframing & Prototyping", Duration: "5 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "Advanced",
				Skills: []models.SkillItem{
					{Name: "Interaction Design", Duration: "6 weeks", Priority: models.PriorityMedium},
					{Name: "Design Systems", Duration: "5 weeks", Priority: models.PriorityMedium},
					{Name: "Usability Testing", Duration: "4 weeks", Priority: models.PriorityHigh},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Mobile App Redesign",
				Description:  "Redesign existing app with improved UX and modern UI",
				Difficulty:   "Beginner",
				Duration:     "3 weeks",
				Skills:       []string{"Figma", "UI Design", "Mobile Design"},
				Deliverables: []string{"Design System", "High-fidelity Mockups", "Prototype"},
			},
			{
				Title:        "E-commerce User Flow",
				Description:  "Design complete checkout experience with user research",
				Difficulty:   "Intermediate",
				Duration:     "4 weeks",
				Skills:       []string{"User Research", "Wireframing", "Prototyping"},
				Deliverables: []string{"Research Report", "User Flows", "Interactive Prototype"},
			},
			{
				Title:        "Design System Creation",
				Description:  "Build comprehensive design system for SaaS product",
				Difficulty:   "Advanced",
				Duration:     "5 weeks",
				Skills:       []string{"Component Design", "Documentation", "Design Tokens"},
				Deliverables: []string{"Design System", "Component Library", "Guidelines"},
			},
		},
	},

	RoleSoftwareEngineer: {
		Salary:      "$85,000 - $150,000",
		Growth:      "+25%",
		DemandScore: 5,
		Industries:  []string{"Tech/Software", "Finance", "Healthcare", "E-commerce", "Startups"},
		Description: "Design, develop, and maintain software applications and systems using modern programming practices",
		AverageTime: "8-14 months",
		RequiredSkills: []string{"Programming", "Algorithms", "System Design", "Problem Solving"},
		SkillPathway: []models.SkillCategory{
			{
				ID:       1,
				Category: "Foundation",
				Skills: []models.SkillItem{
					{Name: "Programming Language (Python/Java)", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "Data Structures", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "Algorithms", Duration: "8 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       2,
				Category: "Software Development",
				Skills: []models.SkillItem{
					{Name: "Object-Oriented Programming", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "Design Patterns", Duration: "6 weeks", Priority: models.PriorityMedium},
					{Name: "Testing & Debugging", Duration: "4 weeks", Priority: models.PriorityHigh},
				},
			},
			{
				ID:       3,
				Category: "System Design",
				Skills: []models.SkillItem{
					{Name: "System Design Fundamentals", Duration: "8 weeks", Priority: models.PriorityHigh},
					{Name: "Databases & Caching", Duration: "6 weeks", Priority: models.PriorityHigh},
					{Name: "API Design", Duration: "4 weeks", Priority: models.PriorityMedium},
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Algorithm Visualizer",
				Description:  "Build tool to visualize sorting and pathfinding algorithms",
				Difficulty:   "Beginner",
				Duration:     "3 weeks",
				Skills:       []string{"JavaScript", "Algorithms", "Visualization"},
				Deliverables: []string{"Web App", "Multiple Algorithms", "Documentation"},
			},
			{
				Title:        "URL Shortener Service",
				Description:  "Create scalable URL shortening service like bit.ly",
				Difficulty:   "Intermediate",
				Duration:     "3 weeks",
				Skills:       []string{"Backend", "Databases", "System Design"},
				Deliverables: []string{"API", "Database Schema", "Analytics"},
			},
			{
				Title:        "Distributed Cache System",
				Description:  "Implement distributed caching system with consistency",
				Difficulty:   "Advanced",
				Duration:     "5 weeks",
				Skills:       []string{"System Design", "Redis", "Distributed Systems"},
				Deliverables: []string{"Cache Implementation", "Documentation", "Benchmarks"},
			},
		},
	},
}

// roleInterests maps each role to the three interest ratings that feed the
// interest-alignment component of the match score.
var roleInterests = map[string][]string{
	RoleMLEngineer:       {models.InterestProblemSolving, models.InterestLogicPuzzles, models.InterestDataAnalysis},
	RoleDataScientist:    {models.InterestDataAnalysis, models.InterestProblemSolving, models.InterestLogicPuzzles},
	RoleDataAnalyst:      {models.InterestDataAnalysis, models.InterestCommunication, models.InterestProblemSolving},
	RoleFullStack:        {models.InterestProblemSolving, models.InterestCreativeDesign, models.InterestLogicPuzzles},
	RoleUIUXDesigner:     {models.InterestCreativeDesign, models.InterestCommunication, models.InterestProblemSolving},
	RoleSoftwareEngineer: {models.InterestProblemSolving, models.InterestLogicPuzzles, models.InterestTeamLeadership},
}

// Profile returns the reference profile for a role. The second return is
// false when the role is not in the catalog.
func Profile(role string) (models.RoleProfile, bool) {
	p, ok := catalog[role]
	return p, ok
}

// Roles returns the supported role names in their canonical order.
func Roles() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}
