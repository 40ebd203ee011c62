package github

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

// Analyzer walks a user's public repositories and assembles a
// developer context from their metadata and top-level structure.
type Analyzer struct {
	client *Client
	logger *zap.Logger
}

// NewAnalyzer returns an Analyzer over client.
func NewAnalyzer(client *Client, log *zap.Logger) *Analyzer {
	return &Analyzer{client: client, logger: log}
}

// Analyze builds a developer context for username. Forked repositories
// are skipped: they demonstrate interest, not authorship.
func (a *Analyzer) Analyze(ctx context.Context, username string) (*analysis.DeveloperContext, error) {
	repos, err := a.client.UserRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	langBytes := make(map[string]int64)
	frameworks := make(map[string]schema.SkillCategory)
	infra := make(map[string]schema.SkillCategory)
	structures := make(map[string]struct{})

	analyzed := 0
	for _, repo := range repos {
		if repo.Fork {
			continue
		}
		analyzed++

		owner := repo.Owner.Login

		langs, err := a.client.RepoLanguages(ctx, owner, repo.Name)
		if err != nil {
			return nil, err
		}
		for lang, byteCount := range langs {
			langBytes[lang] += byteCount
		}

		contents, err := a.client.RepoContents(ctx, owner, repo.Name)
		if err != nil {
			return nil, err
		}

		names := make(map[string]struct{}, len(contents))
		paths := make(map[string]struct{}, len(contents))
		for _, entry := range contents {
			names[entry.Name] = struct{}{}
			paths[entry.Path] = struct{}{}
		}

		detectFileIndicators(names, paths, frameworks, infra)
		a.probeManifests(ctx, owner, repo.Name, names, frameworks)
		detectStructures(names, structures)
	}

	a.logger.Debug("github analysis complete",
		zap.String("username", username),
		zap.Int("repos_total", len(repos)),
		zap.Int("repos_analyzed", analyzed),
		zap.Int("rate_limit_remaining", a.client.rateRemaining),
	)

	return &analysis.DeveloperContext{
		Languages:             buildLanguageSignals(langBytes),
		Frameworks:            sortedSignals(frameworks),
		InfrastructureSignals: sortedSignals(infra),
		ProjectStructures:     sortedKeys(structures),
	}, nil
}

// probeManifests inspects dependency manifests present at the repo
// root. All probes are best-effort.
func (a *Analyzer) probeManifests(ctx context.Context, owner, repo string, names map[string]struct{}, frameworks map[string]schema.SkillCategory) {
	has := func(name string) bool {
		_, ok := names[name]
		return ok
	}

	if has("package.json") {
		if content := a.client.FileText(ctx, owner, repo, "package.json"); content != "" {
			matchJSONDeps(content, []string{"dependencies", "devDependencies"}, npmDeps, frameworks)
		}
	}
	if has("requirements.txt") {
		if content := a.client.FileText(ctx, owner, repo, "requirements.txt"); content != "" {
			matchSubstrings(content, true, pythonDeps, frameworks)
		}
	}
	if has("Cargo.toml") {
		if content := a.client.FileText(ctx, owner, repo, "Cargo.toml"); content != "" {
			matchSubstrings(content, true, rustCrates, frameworks)
		}
	}
	if has("Gemfile") {
		if content := a.client.FileText(ctx, owner, repo, "Gemfile"); content != "" {
			matchSubstrings(content, true, rubyGems, frameworks)
		}
	}
	if has("go.mod") {
		if content := a.client.FileText(ctx, owner, repo, "go.mod"); content != "" {
			matchSubstrings(content, false, goModules, frameworks)
		}
	}
	if has("composer.json") {
		if content := a.client.FileText(ctx, owner, repo, "composer.json"); content != "" {
			matchJSONDeps(content, []string{"require", "require-dev"}, phpPackages, frameworks)
		}
	}
}

// buildLanguageSignals converts byte counts to percentage-weighted
// signals, highest share first.
func buildLanguageSignals(langBytes map[string]int64) []analysis.LanguageSignal {
	var total int64
	for _, n := range langBytes {
		total += n
	}
	if total == 0 {
		total = 1
	}

	signals := make([]analysis.LanguageSignal, 0, len(langBytes))
	for lang, byteCount := range langBytes {
		pct := math.Round(float64(byteCount)/float64(total)*1000) / 10
		signals = append(signals, analysis.LanguageSignal{
			Name:       lang,
			Category:   string(schema.CategoryLanguage),
			Percentage: pct,
		})
	}

	sort.Slice(signals, func(i, j int) bool {
		if signals[i].Percentage != signals[j].Percentage {
			return signals[i].Percentage > signals[j].Percentage
		}
		return signals[i].Name < signals[j].Name
	})
	return signals
}

func sortedSignals(m map[string]schema.SkillCategory) []analysis.Signal {
	signals := make([]analysis.Signal, 0, len(m))
	for name, category := range m {
		signals = append(signals, analysis.Signal{Name: name, Category: string(category)})
	}
	sort.Slice(signals, func(i, j int) bool { return signals[i].Name < signals[j].Name })
	return signals
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
