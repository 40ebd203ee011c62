package analysis

import "github.com/skillbridge/skillbridge/internal/schema"

const (
	seniorYears = 7
	juniorYears = 2

	seniorSignals = 12
	juniorSignals = 5
)

// InferExperience estimates a coarse seniority tier from the developer
// context. Self-reported years are a stronger signal than repository
// breadth and take precedence at the senior and junior boundaries; the
// count heuristic applies otherwise.
func InferExperience(dev *DeveloperContext) schema.ExperienceLevel {
	count := len(dev.Languages) + len(dev.Frameworks) + len(dev.InfrastructureSignals) + len(dev.ResumeSkills)

	if dev.ResumeYears != nil {
		switch {
		case *dev.ResumeYears >= seniorYears:
			return schema.LevelSenior
		case *dev.ResumeYears < juniorYears:
			return schema.LevelJunior
		}
	}

	switch {
	case count > seniorSignals:
		return schema.LevelSenior
	case count < juniorSignals:
		return schema.LevelJunior
	default:
		return schema.LevelMid
	}
}
