package pipeline

import "github.com/skillbridge/skillbridge/internal/analysis"

// Bundled example inputs for runs without live GitHub access.

func exampleDevContext() *analysis.DeveloperContext {
	return &analysis.DeveloperContext{
		Languages: []analysis.LanguageSignal{
			{Name: "Python", Category: "language", Percentage: 45.0},
			{Name: "JavaScript", Category: "language", Percentage: 30.0},
			{Name: "HTML", Category: "language", Percentage: 15.0},
			{Name: "CSS", Category: "language", Percentage: 10.0},
		},
		Frameworks: []analysis.Signal{
			{Name: "Flask", Category: "framework"},
			{Name: "React", Category: "framework"},
		},
		InfrastructureSignals: []analysis.Signal{
			{Name: "Docker", Category: "infrastructure"},
			{Name: "GitHub Actions", Category: "infrastructure"},
		},
		ProjectStructures: []string{"src_layout", "python_package", "node_project"},
	}
}

const exampleJobDescription = `Senior Full-Stack Engineer

We are looking for an experienced full-stack engineer to join our platform team.

Requirements:
- 4+ years of professional experience with Python and TypeScript
- Strong experience with Django or FastAPI for backend services
- Proficiency with React and modern frontend tooling
- Experience with PostgreSQL and Redis
- Comfortable with Docker, Kubernetes, and CI/CD pipelines
- Familiarity with microservices architecture and RESTful API design
- Experience with cloud platforms (AWS preferred)
`
