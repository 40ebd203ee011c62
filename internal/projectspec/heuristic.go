package projectspec

import (
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

var scopeFraming = map[schema.DifficultyTier]string{
	schema.DifficultyBeginner: "This project is scoped for someone getting started with these technologies. " +
		"Focus on understanding the fundamentals, how the pieces fit together, " +
		"basic configuration, and getting a working result you can demonstrate.",
	schema.DifficultyIntermediate: "This project assumes foundational knowledge and pushes into real-world " +
		"patterns. You'll work with production-relevant features like " +
		"authentication, data relationships, and proper error handling.",
	schema.DifficultyAdvanced: "This project targets experienced developers ready for production-grade " +
		"challenges. Expect to work with architectural patterns, performance " +
		"optimization, and operational concerns that teams face at scale.",
}

var genericFeatures = map[schema.DifficultyTier][]string{
	schema.DifficultyBeginner: {
		"Set up the project structure with proper configuration and dependencies",
		"Implement the core functionality with clean, readable code",
		"Add basic tests and documentation for the main features",
	},
	schema.DifficultyIntermediate: {
		"Implement the core functionality with proper error handling and validation",
		"Add integration tests and automated quality checks",
		"Build a clean API or interface with documentation",
		"Add configuration management with environment-specific settings",
		"Implement structured logging and meaningful error messages",
	},
	schema.DifficultyAdvanced: {
		"Implement a production-grade architecture with proper separation of concerns",
		"Add comprehensive testing including edge cases and performance benchmarks",
		"Build monitoring, logging, and graceful error recovery",
		"Implement proper error handling with custom error types and recovery",
		"Add configuration management with validation and environment overrides",
		"Build a CI pipeline with linting, testing, and code quality checks",
		"Implement API documentation with examples and usage guides",
		"Add security hardening with input validation and access controls",
	},
}

func (g *Generator) generateHeuristic(rec schema.Recommendation, difficulty schema.DifficultyTier, strengths []string, docLinks []schema.DocLink) *schema.ProjectSpec {
	description := buildHeuristicDescription(rec, difficulty, strengths)

	return &schema.ProjectSpec{
		Title:               rec.Title,
		Difficulty:          difficulty,
		Description:         description,
		Features:            g.collectFeatures(rec.SkillsAddressed, difficulty),
		SkillsAddressed:     append([]string{}, rec.SkillsAddressed...),
		WhySkillsMatter:     rec.SkillContext,
		DocLinks:            docLinks,
		StrengthsReferenced: referencedStrengths(description, strengths),
	}
}

// buildHeuristicDescription assembles 2 to 4 paragraphs: scope framing
// and personalization always, a technical-approach paragraph from
// intermediate up, and a production-depth paragraph for advanced.
func buildHeuristicDescription(rec schema.Recommendation, difficulty schema.DifficultyTier, strengths []string) string {
	skillsStr := strings.Join(rec.SkillsAddressed, ", ")

	knownLower := make(map[string]struct{}, len(strengths))
	for _, s := range strengths {
		knownLower[strings.ToLower(s)] = struct{}{}
	}
	recLower := make(map[string]struct{}, len(rec.SkillsAddressed))
	for _, s := range rec.SkillsAddressed {
		recLower[strings.ToLower(s)] = struct{}{}
	}

	var newSkills []string
	for _, s := range rec.SkillsAddressed {
		if _, ok := knownLower[strings.ToLower(s)]; !ok {
			newSkills = append(newSkills, s)
		}
	}
	var knownOverlap []string
	for _, s := range strengths {
		if _, ok := recLower[strings.ToLower(s)]; ok {
			knownOverlap = append(knownOverlap, s)
		}
	}

	paragraphs := []string{rec.Description + " " + scopeFraming[difficulty]}

	switch {
	case len(knownOverlap) > 0 && len(newSkills) > 0:
		paragraphs = append(paragraphs,
			"Your experience with "+strings.Join(knownOverlap, ", ")+" gives you a solid "+
				"foundation here. Focus your learning energy on "+strings.Join(newSkills, ", ")+
				", the concepts will click faster because you already understand the broader ecosystem.")
	case len(newSkills) > 0:
		strengthNames := "your existing experience"
		if len(strengths) > 0 {
			top := strengths
			if len(top) > 3 {
				top = top[:3]
			}
			strengthNames = strings.Join(top, ", ")
		}
		paragraphs = append(paragraphs,
			"While "+strings.Join(newSkills, ", ")+" may be new territory, your background "+
				"with "+strengthNames+" means you already think like a developer. "+
				"Apply the same patterns: start small, iterate, and build on what works.")
	default:
		paragraphs = append(paragraphs,
			"You already have exposure to these technologies. This project is an "+
				"opportunity to deepen that knowledge and produce a polished portfolio "+
				"piece that demonstrates mastery, not just familiarity.")
	}

	switch difficulty {
	case schema.DifficultyIntermediate:
		paragraphs = append(paragraphs,
			"At this level, hiring managers expect to see more than a tutorial "+
				"follow-along. Structure your "+skillsStr+" project with clear "+
				"separation between layers: data access, business logic, and "+
				"presentation. Add input validation that handles real edge cases, "+
				"write tests that verify behavior (not just coverage), and include "+
				"a README that explains your design decisions. These details signal "+
				"that you can ship features a team can maintain.")
	case schema.DifficultyAdvanced:
		paragraphs = append(paragraphs,
			"Engineering teams evaluating senior candidates look for evidence "+
				"of systems thinking. Your "+skillsStr+" project should demonstrate "+
				"clear architectural boundaries, explicit trade-off decisions, and "+
				"operational awareness. Think about failure modes: what happens "+
				"when a dependency is down, when input volume spikes, or when "+
				"configuration is missing? Build in graceful degradation, structured "+
				"logging, and health checks that make the system observable.")
		paragraphs = append(paragraphs,
			"The difference between a portfolio project and a production system is "+
				"in the details most developers skip: database migrations that handle "+
				"rollbacks, CI pipelines that catch regressions before merge, security "+
				"headers and rate limiting, and documentation that helps the next "+
				"developer understand not just what the code does but why it's "+
				"structured that way. Completing this project at an advanced level "+
				"demonstrates the kind of ownership and foresight that distinguishes "+
				"senior engineers.")
	}

	return strings.Join(paragraphs, "\n\n")
}

// collectFeatures gathers curated per-skill features at the tier, with
// generic fallbacks, padded to at least three and capped at the tier
// target.
func (g *Generator) collectFeatures(skills []string, difficulty schema.DifficultyTier) []string {
	target, ok := featureTargets[difficulty]
	if !ok {
		target = featureTargets[schema.DifficultyBeginner]
	}
	generic := genericFeatures[difficulty]
	if generic == nil {
		generic = genericFeatures[schema.DifficultyIntermediate]
	}

	var features []string
	for _, skill := range skills {
		if curated := g.features.For(skill, difficulty); len(curated) > 0 {
			features = append(features, curated...)
		} else if len(features) == 0 {
			// Generic fallback only while nothing curated has landed.
			features = append(features, generic...)
		}
	}

	if len(features) < minFeatures {
		for _, f := range generic {
			if len(features) >= minFeatures {
				break
			}
			if !containsString(features, f) {
				features = append(features, f)
			}
		}
	}

	if len(features) > target {
		features = features[:target]
	}
	return features
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
