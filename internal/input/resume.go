package input

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/skillbridge/skillbridge/internal/analysis"
)

// ErrEmptyResume is returned for empty or whitespace-only resume text.
var ErrEmptyResume = errors.New("resume text is empty, provide non-empty resume content")

var yearsPattern = regexp.MustCompile(
	`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+)?experience`)

// ResumeContext is the normalized enrichment extracted from resume
// text. It never overrides repository-derived signals.
type ResumeContext struct {
	Skills            []string
	ExperienceDomains []string
	YearsOfExperience *int
}

// ParseResume extracts skills, experience domains, and years of
// experience from plain-text resume content.
func ParseResume(text string) (*ResumeContext, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResume
	}

	return &ResumeContext{
		Skills:            MatchTechnologies(text),
		ExperienceDomains: MatchDomains(text),
		YearsOfExperience: extractYears(text),
	}, nil
}

// extractYears returns the largest years-of-experience figure in the
// text, which is most likely the total.
func extractYears(text string) *int {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	best := -1
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}

// MergeResumeContext attaches resume-derived data to a developer
// context as secondary signals. Repository-derived languages,
// frameworks, and infrastructure signals are never replaced.
func MergeResumeContext(dev *analysis.DeveloperContext, resume *ResumeContext) *analysis.DeveloperContext {
	enriched := *dev
	enriched.ResumeSkills = resume.Skills
	enriched.ResumeDomains = resume.ExperienceDomains
	enriched.ResumeYears = resume.YearsOfExperience
	return &enriched
}
