package export

import (
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

// Markdown renders an analysis result as a human-readable report.
func Markdown(result *schema.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Skill-Gap Analysis\n\n")
	if result.ExperienceLevel != "" {
		fmt.Fprintf(&b, "Estimated experience level: **%s**\n\n", result.ExperienceLevel)
	}

	b.WriteString("## Strengths\n\n")
	writeSkillList(&b, result.Strengths, "No overlapping skills detected.")

	b.WriteString("\n## Gaps\n\n")
	writeSkillList(&b, result.Gaps, "No gaps detected, the requirements are fully covered.")

	b.WriteString("\n## Recommendations\n\n")
	if len(result.Recommendations) == 0 {
		b.WriteString("_None._\n")
	}
	for i, rec := range result.Recommendations {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, rec.Title)
		fmt.Fprintf(&b, "%s\n\n", rec.Description)
		fmt.Fprintf(&b, "- Skills addressed: %s\n", strings.Join(rec.SkillsAddressed, ", "))
		fmt.Fprintf(&b, "- Estimated scope: %s\n", rec.EstimatedScope)
		if rec.SkillContext != "" {
			fmt.Fprintf(&b, "- Why it matters: %s\n", rec.SkillContext)
		}
		b.WriteString("\n")
	}

	if len(result.PortfolioInsights) > 0 {
		b.WriteString("## Portfolio Insights\n\n")
		for _, insight := range result.PortfolioInsights {
			fmt.Fprintf(&b, "- **%s**: %s\n", insight.Category, insight.Message)
		}
		b.WriteString("\n")
	}

	if len(result.InterviewTopics) > 0 {
		b.WriteString("## Interview Preparation\n\n")
		for _, prep := range result.InterviewTopics {
			fmt.Fprintf(&b, "### %s\n\n", prep.Skill)
			for _, topic := range prep.Topics {
				fmt.Fprintf(&b, "- %s\n", topic)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ProjectSpecMarkdown renders a project spec as a standalone document.
func ProjectSpecMarkdown(spec *schema.ProjectSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", spec.Title)
	fmt.Fprintf(&b, "**Difficulty:** %s\n\n", spec.Difficulty)
	fmt.Fprintf(&b, "%s\n\n", spec.Description)

	b.WriteString("## Key Features\n\n")
	for _, feature := range spec.Features {
		fmt.Fprintf(&b, "- %s\n", feature)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Skills Addressed\n\n%s\n\n", strings.Join(spec.SkillsAddressed, ", "))

	if spec.WhySkillsMatter != "" {
		fmt.Fprintf(&b, "## Why These Skills Matter\n\n%s\n\n", spec.WhySkillsMatter)
	}

	if len(spec.DocLinks) > 0 {
		b.WriteString("## Documentation\n\n")
		for _, link := range spec.DocLinks {
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n", link.Label, link.URL, link.Skill)
		}
		b.WriteString("\n")
	}

	if len(spec.StrengthsReferenced) > 0 {
		fmt.Fprintf(&b, "## Builds On Your Strengths\n\n%s\n", strings.Join(spec.StrengthsReferenced, ", "))
	}

	return b.String()
}

func writeSkillList(b *strings.Builder, skills []schema.Skill, empty string) {
	if len(skills) == 0 {
		fmt.Fprintf(b, "_%s_\n", empty)
		return
	}
	for _, s := range skills {
		fmt.Fprintf(b, "- %s (%s)\n", s.Name, s.Category)
	}
}
