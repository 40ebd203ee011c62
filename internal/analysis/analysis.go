// Package analysis implements the deterministic core of the engine:
// gap classification, experience inference, portfolio insights, and
// interview topic lookup. No I/O happens here.
package analysis

import (
	"sort"

	"github.com/skillbridge/skillbridge/internal/schema"
	"github.com/skillbridge/skillbridge/internal/taxonomy"
)

// DeveloperContext carries the demonstrated-skill signals collected by
// the input layer. Resume fields are secondary enrichment and never
// override repository-derived signals.
type DeveloperContext struct {
	Languages             []LanguageSignal `json:"languages"`
	Frameworks            []Signal         `json:"frameworks"`
	InfrastructureSignals []Signal         `json:"infrastructure_signals"`
	ProjectStructures     []string         `json:"project_structures,omitempty"`
	ResumeSkills          []string         `json:"resume_skills,omitempty"`
	ResumeDomains         []string         `json:"resume_domains,omitempty"`
	ResumeYears           *int             `json:"resume_years,omitempty"`
	Summary               string           `json:"summary,omitempty"`
}

// Signal is a single named skill signal with its category.
type Signal struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LanguageSignal is a language signal weighted by its share of the
// developer's repositories.
type LanguageSignal struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// SkillNames returns every distinct skill name in the context,
// repository signals first, resume skills last.
func (c *DeveloperContext) SkillNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, l := range c.Languages {
		add(l.Name)
	}
	for _, f := range c.Frameworks {
		add(f.Name)
	}
	for _, i := range c.InfrastructureSignals {
		add(i.Name)
	}
	for _, s := range c.ResumeSkills {
		add(s)
	}
	return names
}

// TopLanguage returns the language with the highest percentage, or ""
// when no languages were detected.
func (c *DeveloperContext) TopLanguage() string {
	top := ""
	best := -1.0
	for _, l := range c.Languages {
		if l.Percentage > best {
			best = l.Percentage
			top = l.Name
		}
	}
	return top
}

// JobRequirements is the parsed output of the job description layer.
type JobRequirements struct {
	RequiredTechnologies      []string `json:"required_technologies"`
	ExperienceDomains         []string `json:"experience_domains"`
	ArchitecturalExpectations []string `json:"architectural_expectations"`
}

// GapResult partitions the required skills into three pairwise disjoint
// sets, each sorted by name.
type GapResult struct {
	Detected []schema.Skill
	Adjacent []schema.Skill
	Missing  []schema.Skill
}

// GapNames returns the names of missing and adjacent skills, missing
// first, preserving sort order within each set.
func (g *GapResult) GapNames() []string {
	names := make([]string, 0, len(g.Missing)+len(g.Adjacent))
	for _, s := range g.Missing {
		names = append(names, s.Name)
	}
	for _, s := range g.Adjacent {
		names = append(names, s.Name)
	}
	return names
}

// Analyzer classifies skill gaps against an immutable taxonomy.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// NewAnalyzer returns an Analyzer backed by tax.
func NewAnalyzer(tax *taxonomy.Taxonomy) *Analyzer {
	return &Analyzer{tax: tax}
}

// Analyze compares the developer context against the job requirements.
//
// detected  = developer ∩ required
// adjacent  = (one-hop adjacency of developer skills, minus developer skills) ∩ required
// missing   = required − (developer ∪ adjacency pool)
//
// Identical inputs always produce identical, name-sorted output.
func (a *Analyzer) Analyze(dev *DeveloperContext, job *JobRequirements) *GapResult {
	devSkills := make(map[string]struct{})
	for _, name := range dev.SkillNames() {
		devSkills[a.tax.Canonicalize(name)] = struct{}{}
	}

	required := make(map[string]struct{})
	for _, tech := range job.RequiredTechnologies {
		required[a.tax.Canonicalize(tech)] = struct{}{}
	}

	detected := intersect(devSkills, required)

	// One adjacency hop from every developer skill. A directly known
	// skill is never classified as adjacent, so anything already in
	// devSkills is excluded from the pool.
	pool := make(map[string]struct{})
	for skill := range devSkills {
		for _, adj := range a.tax.Adjacent(skill) {
			canon := a.tax.Canonicalize(adj)
			if _, known := devSkills[canon]; !known {
				pool[canon] = struct{}{}
			}
		}
	}

	adjacent := intersect(pool, required)

	accounted := make(map[string]struct{}, len(devSkills)+len(pool))
	for s := range devSkills {
		accounted[s] = struct{}{}
	}
	for s := range pool {
		accounted[s] = struct{}{}
	}

	var missing []string
	for s := range required {
		if _, ok := accounted[s]; !ok {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)

	return &GapResult{
		Detected: a.skills(detected),
		Adjacent: a.skills(adjacent),
		Missing:  a.skills(missing),
	}
}

func intersect(a, b map[string]struct{}) []string {
	var out []string
	for s := range a {
		if _, ok := b[s]; ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func (a *Analyzer) skills(names []string) []schema.Skill {
	skills := make([]schema.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, a.tax.Skill(name))
	}
	return skills
}
