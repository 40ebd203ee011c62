package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

const maxInsights = 3

var infraKeywords = map[string]struct{}{
	"docker": {}, "kubernetes": {}, "aws": {}, "azure": {},
	"gcp": {}, "terraform": {}, "ansible": {},
}

// PortfolioInsights surfaces up to three observations about
// underrepresented areas in the developer's portfolio relative to the
// target role.
func PortfolioInsights(dev *DeveloperContext, job *JobRequirements) []schema.PortfolioInsight {
	var insights []schema.PortfolioInsight

	hasLanguages := len(dev.Languages) > 0
	hasFrameworks := len(dev.Frameworks) > 0
	hasInfra := len(dev.InfrastructureSignals) > 0

	var present, absent []string
	for _, g := range []struct {
		name string
		ok   bool
	}{
		{"languages", hasLanguages},
		{"frameworks", hasFrameworks},
		{"infrastructure", hasInfra},
	} {
		if g.ok {
			present = append(present, g.name)
		} else {
			absent = append(absent, g.name)
		}
	}

	if len(present) == 1 && len(absent) > 0 {
		insights = append(insights, schema.PortfolioInsight{
			Category: "balance",
			Message: fmt.Sprintf(
				"Your portfolio is heavily weighted toward %s. Adding projects that demonstrate %s will show broader capability.",
				present[0], strings.Join(absent, ", "),
			),
		})
	}

	if jobNeedsInfra(job) && !hasInfra {
		insights = append(insights, schema.PortfolioInsight{
			Category: "infrastructure",
			Message: "Your portfolio doesn't demonstrate deployment or infrastructure skills. " +
				"Even a simple Docker + CI setup on an existing project fills this gap.",
		})
	}

	if missing := missingDomains(dev, job); len(missing) > 0 && len(insights) < maxInsights {
		sample := missing
		if len(sample) > 3 {
			sample = sample[:3]
		}
		noun := "these domains"
		if len(missing) == 1 {
			noun = "this domain"
		}
		insights = append(insights, schema.PortfolioInsight{
			Category: "domain",
			Message: fmt.Sprintf(
				"The target role values %s experience. Consider projects in %s even if you use familiar technologies.",
				strings.Join(sample, ", "), noun,
			),
		})
	}

	if len(dev.Languages) >= 5 && len(insights) < maxInsights {
		high := 0
		for _, l := range dev.Languages {
			if l.Percentage >= 20 {
				high++
			}
		}
		if high <= 1 {
			insights = append(insights, schema.PortfolioInsight{
				Category: "depth",
				Message:  "Consider deepening expertise in one or two areas rather than spreading thin.",
			})
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func jobNeedsInfra(job *JobRequirements) bool {
	for _, tech := range job.RequiredTechnologies {
		if _, ok := infraKeywords[strings.ToLower(tech)]; ok {
			return true
		}
	}
	return false
}

func missingDomains(dev *DeveloperContext, job *JobRequirements) []string {
	covered := make(map[string]struct{})
	for _, s := range dev.ResumeSkills {
		covered[strings.ToLower(s)] = struct{}{}
	}
	for _, f := range dev.Frameworks {
		covered[strings.ToLower(f.Name)] = struct{}{}
	}

	var missing []string
	for _, domain := range job.ExperienceDomains {
		if _, ok := covered[strings.ToLower(domain)]; !ok {
			missing = append(missing, domain)
		}
	}
	sort.Strings(missing)
	return missing
}
