// Package schema defines the analysis output contract (v1.0) shared by
// the engine, the CLI, and export consumers.
package schema

// SchemaVersion is the current output schema version. Consumers use it
// to detect additive-field compatibility.
const SchemaVersion = "1.0"

// SkillCategory is a broad classification of a skill.
type SkillCategory string

const (
	CategoryLanguage       SkillCategory = "language"
	CategoryFramework      SkillCategory = "framework"
	CategoryInfrastructure SkillCategory = "infrastructure"
	CategoryTool           SkillCategory = "tool"
	CategoryConcept        SkillCategory = "concept"
)

// EstimatedScope is a relative effort indicator for a recommended project.
type EstimatedScope string

const (
	ScopeSmall  EstimatedScope = "small"
	ScopeMedium EstimatedScope = "medium"
	ScopeLarge  EstimatedScope = "large"
)

// ValidScope reports whether s is a recognized scope value.
func ValidScope(s EstimatedScope) bool {
	switch s {
	case ScopeSmall, ScopeMedium, ScopeLarge:
		return true
	}
	return false
}

// ExperienceLevel is a coarse seniority tier inferred from developer signals.
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// DifficultyTier classifies a recommendation template.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
)

// Skill is a technology or concept identified during analysis.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Recommendation is an actionable project suggestion addressing skill gaps.
// SkillsAddressed is capped at 3 to keep project scope manageable.
type Recommendation struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	SkillsAddressed []string       `json:"skills_addressed"`
	EstimatedScope  EstimatedScope `json:"estimated_scope"`
	SkillContext    string         `json:"skill_context,omitempty"`
}

// PortfolioInsight is an observation about underrepresented areas in a
// developer's portfolio relative to the target role.
type PortfolioInsight struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// InterviewPrep lists common interview topics for a single gap skill.
type InterviewPrep struct {
	Skill  string   `json:"skill"`
	Topics []string `json:"topics"`
}

// AnalysisResult is the sole externally visible artifact of a pipeline run.
type AnalysisResult struct {
	SchemaVersion     string             `json:"schema_version"`
	Strengths         []Skill            `json:"strengths"`
	Gaps              []Skill            `json:"gaps"`
	Recommendations   []Recommendation   `json:"recommendations"`
	ExperienceLevel   string             `json:"experience_level,omitempty"`
	PortfolioInsights []PortfolioInsight `json:"portfolio_insights"`
	InterviewTopics   []InterviewPrep    `json:"interview_topics"`
}

// DocLink is a curated documentation reference attached to a project spec.
type DocLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Skill string `json:"skill"`
}

// ProjectSpec is a rich, exportable expansion of a single recommendation.
type ProjectSpec struct {
	Title               string         `json:"title"`
	Difficulty          DifficultyTier `json:"difficulty"`
	Description         string         `json:"description"`
	Features            []string       `json:"features"`
	SkillsAddressed     []string       `json:"skills_addressed"`
	WhySkillsMatter     string         `json:"why_skills_matter"`
	DocLinks            []DocLink      `json:"doc_links"`
	StrengthsReferenced []string       `json:"strengths_referenced"`
}
