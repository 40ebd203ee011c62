// Package input ingests the engine's raw inputs: job description
// text, job posting URLs, plain-text resumes, and user-supplied
// identifiers. Extraction is keyword-driven and deterministic.
package input

import (
	"regexp"
	"sort"
	"sync"
)

// technologyKeywords maps lowercase aliases to canonical technology
// names.
var technologyKeywords = map[string]string{
	// Languages
	"python":     "Python",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"java":       "Java",
	"c#":         "C#",
	"c++":        "C++",
	"go":         "Go",
	"golang":     "Go",
	"rust":       "Rust",
	"ruby":       "Ruby",
	"php":        "PHP",
	"swift":      "Swift",
	"kotlin":     "Kotlin",
	"scala":      "Scala",
	"r":          "R",
	"sql":        "SQL",
	// Frontend
	"react":       "React",
	"reactjs":     "React",
	"react.js":    "React",
	"angular":     "Angular",
	"vue":         "Vue",
	"vuejs":       "Vue",
	"vue.js":      "Vue",
	"next.js":     "Next.js",
	"nextjs":      "Next.js",
	"nuxt":        "Nuxt",
	"svelte":      "Svelte",
	"html":        "HTML",
	"css":         "CSS",
	"sass":        "Sass",
	"tailwind":    "Tailwind CSS",
	"tailwindcss": "Tailwind CSS",
	// Backend
	"node":          "Node.js",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"django":        "Django",
	"flask":         "Flask",
	"fastapi":       "FastAPI",
	"express":       "Express",
	"spring":        "Spring",
	"spring boot":   "Spring Boot",
	"rails":         "Ruby on Rails",
	"ruby on rails": "Ruby on Rails",
	".net":          ".NET",
	"asp.net":       "ASP.NET",
	// Data
	"postgresql":    "PostgreSQL",
	"postgres":      "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"kafka":         "Kafka",
	"graphql":       "GraphQL",
	"rest api":      "REST API",
	"restful":       "REST API",
	// Infrastructure
	"docker":         "Docker",
	"kubernetes":     "Kubernetes",
	"k8s":            "Kubernetes",
	"aws":            "AWS",
	"azure":          "Azure",
	"gcp":            "GCP",
	"google cloud":   "GCP",
	"terraform":      "Terraform",
	"ansible":        "Ansible",
	"jenkins":        "Jenkins",
	"github actions": "GitHub Actions",
	"gitlab ci":      "GitLab CI",
	"linux":          "Linux",
	"nginx":          "Nginx",
	// Tools
	"git":      "Git",
	"webpack":  "Webpack",
	"vite":     "Vite",
	"jest":     "Jest",
	"pytest":   "pytest",
	"selenium": "Selenium",
	"redux":    "Redux",
	"rabbitmq": "RabbitMQ",
}

// domainKeywords maps lowercase aliases to experience domains.
var domainKeywords = map[string]string{
	"frontend":            "frontend",
	"front-end":           "frontend",
	"front end":           "frontend",
	"backend":             "backend",
	"back-end":            "backend",
	"back end":            "backend",
	"full-stack":          "full-stack",
	"full stack":          "full-stack",
	"fullstack":           "full-stack",
	"devops":              "devops",
	"dev ops":             "devops",
	"cloud":               "cloud",
	"cloud computing":     "cloud",
	"machine learning":    "machine learning",
	"ml":                  "machine learning",
	"data engineering":    "data engineering",
	"data pipeline":       "data engineering",
	"mobile":              "mobile",
	"mobile development":  "mobile",
	"security":            "security",
	"cybersecurity":       "security",
	"api development":     "API development",
	"api design":          "API development",
	"database":            "database",
	"data modeling":       "database",
	"testing":             "testing",
	"qa":                  "testing",
	"quality assurance":   "testing",
	"distributed systems": "distributed systems",
	"embedded":            "embedded systems",
	"embedded systems":    "embedded systems",
	"web development":     "web development",
	"e-commerce":          "e-commerce",
	"ecommerce":           "e-commerce",
	"fintech":             "fintech",
	"healthcare":          "healthcare",
}

// architectureKeywords maps lowercase aliases to architectural
// patterns and practices.
var architectureKeywords = map[string]string{
	"microservice":            "microservices",
	"microservices":           "microservices",
	"monolith":                "monolith",
	"serverless":              "serverless",
	"event-driven":            "event-driven",
	"event driven":            "event-driven",
	"ci/cd":                   "CI/CD",
	"ci cd":                   "CI/CD",
	"continuous integration":  "CI/CD",
	"continuous deployment":   "CI/CD",
	"test-driven":             "TDD",
	"tdd":                     "TDD",
	"agile":                   "Agile",
	"scrum":                   "Scrum",
	"kanban":                  "Kanban",
	"rest":                    "REST",
	"restful":                 "REST",
	"graphql":                 "GraphQL",
	"soa":                     "SOA",
	"service-oriented":        "SOA",
	"mvp":                     "MVP",
	"mvc":                     "MVC",
	"mvvm":                    "MVVM",
	"single page application": "SPA",
	"spa":                     "SPA",
	"ssr":                     "SSR",
	"server-side rendering":   "SSR",
	"containerization":        "containerization",
	"infrastructure as code":  "infrastructure as code",
	"iac":                     "infrastructure as code",
	"observability":           "observability",
	"monitoring":              "observability",
	"load balancing":          "load balancing",
	"caching":                 "caching",
	"message queue":           "message queues",
	"message queues":          "message queues",
	"api gateway":             "API gateway",
}

type keywordPattern struct {
	canonical string
	re        *regexp.Regexp
}

var (
	compileOnce   sync.Once
	techPatterns  []keywordPattern
	domPatterns   []keywordPattern
	archPatterns  []keywordPattern
)

func compiledPatterns() ([]keywordPattern, []keywordPattern, []keywordPattern) {
	compileOnce.Do(func() {
		techPatterns = compileKeywords(technologyKeywords)
		domPatterns = compileKeywords(domainKeywords)
		archPatterns = compileKeywords(architectureKeywords)
	})
	return techPatterns, domPatterns, archPatterns
}

// compileKeywords builds word-boundary patterns, longest alias first
// so phrases win over their prefixes ("spring boot" before "spring").
// Boundaries are applied only next to word characters, so aliases like
// "c++" and ".net" still match.
func compileKeywords(keywords map[string]string) []keywordPattern {
	aliases := make([]string, 0, len(keywords))
	for alias := range keywords {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})

	patterns := make([]keywordPattern, 0, len(aliases))
	for _, alias := range aliases {
		expr := regexp.QuoteMeta(alias)
		if isWordByte(alias[0]) {
			expr = `\b` + expr
		}
		if isWordByte(alias[len(alias)-1]) {
			expr += `\b`
		}
		patterns = append(patterns, keywordPattern{
			canonical: keywords[alias],
			re:        regexp.MustCompile(`(?i)` + expr),
		})
	}
	return patterns
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func matchPatterns(text string, patterns []keywordPattern) []string {
	seen := make(map[string]struct{})
	var found []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			if _, ok := seen[p.canonical]; !ok {
				seen[p.canonical] = struct{}{}
				found = append(found, p.canonical)
			}
		}
	}
	return found
}

// MatchTechnologies returns canonical technology names found in text.
func MatchTechnologies(text string) []string {
	tech, _, _ := compiledPatterns()
	return matchPatterns(text, tech)
}

// MatchDomains returns experience domains found in text.
func MatchDomains(text string) []string {
	_, dom, _ := compiledPatterns()
	return matchPatterns(text, dom)
}

// MatchArchitecture returns architectural expectations found in text.
func MatchArchitecture(text string) []string {
	_, _, arch := compiledPatterns()
	return matchPatterns(text, arch)
}
