package input

import (
	"errors"
	"strings"

	"github.com/skillbridge/skillbridge/internal/analysis"
)

// Job description failures callers branch on.
var (
	ErrEmptyJobDescription = errors.New("job description is empty, provide a non-empty job description")
	ErrNonTechnicalJob     = errors.New("no technical skills detected in this job description; " +
		"skillbridge analyzes technical roles such as software engineers, architects, " +
		"data scientists, and devops engineers")
)

// technicalRoleIndicators rescue a job description with no recognized
// technologies but clear technical-role language.
var technicalRoleIndicators = []string{
	"software",
	"developer",
	"engineer",
	"engineering",
	"devops",
	"data scientist",
	"data engineer",
	"architect",
	"sre",
	"site reliability",
	"backend",
	"frontend",
	"front-end",
	"back-end",
	"full-stack",
	"fullstack",
	"full stack",
	"machine learning",
	"cloud",
	"security engineer",
	"dba",
	"database administrator",
	"technical lead",
	"tech lead",
	"platform",
	"infrastructure",
	"programmer",
	"qa engineer",
	"test engineer",
	"embedded",
	"firmware",
}

// ParseJobDescription extracts structured requirements from raw job
// description text. Bullet lists, prose, and mixed formats all work,
// the matching is format-agnostic.
func ParseJobDescription(text string) (*analysis.JobRequirements, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyJobDescription
	}

	reqs := &analysis.JobRequirements{
		RequiredTechnologies:      MatchTechnologies(text),
		ExperienceDomains:         MatchDomains(text),
		ArchitecturalExpectations: MatchArchitecture(text),
	}

	if err := validateTechnicalContent(text, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func validateTechnicalContent(text string, reqs *analysis.JobRequirements) error {
	if len(reqs.RequiredTechnologies) > 0 {
		return nil
	}

	lower := strings.ToLower(text)
	for _, indicator := range technicalRoleIndicators {
		if strings.Contains(lower, indicator) {
			return nil
		}
	}
	return ErrNonTechnicalJob
}
