package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/schema"
)

func selectionCatalog() *Catalog {
	return CatalogFromTemplates([]Template{
		{
			Title:           "Containerized API",
			SkillsAddressed: []string{"Docker", "Kubernetes"},
			EstimatedScope:  schema.ScopeMedium,
			Difficulty:      schema.DifficultyIntermediate,
		},
		{
			Title:           "Infra Pipeline",
			SkillsAddressed: []string{"Docker", "Kubernetes", "Terraform"},
			EstimatedScope:  schema.ScopeLarge,
			Difficulty:      schema.DifficultyAdvanced,
		},
		{
			Title:           "First Container",
			SkillsAddressed: []string{"Docker"},
			EstimatedScope:  schema.ScopeSmall,
			Difficulty:      schema.DifficultyBeginner,
		},
		{
			Title:           "Frontend Dashboard",
			SkillsAddressed: []string{"React", "TypeScript"},
			EstimatedScope:  schema.ScopeMedium,
			Difficulty:      schema.DifficultyIntermediate,
		},
	})
}

func TestSelectExcludesZeroOverlap(t *testing.T) {
	c := selectionCatalog()

	got := c.Select([]string{"Docker"}, schema.LevelMid, 10)

	titles := make([]string, 0, len(got))
	for _, tpl := range got {
		titles = append(titles, tpl.Title)
	}
	assert.NotContains(t, titles, "Frontend Dashboard")
}

func TestSelectOverlapBeatsDifficultyBonus(t *testing.T) {
	c := selectionCatalog()

	// For a junior, the advanced three-skill template earns no bonus
	// but still outranks every partial match.
	got := c.Select([]string{"Docker", "Kubernetes", "Terraform"}, schema.LevelJunior, 10)

	require.NotEmpty(t, got)
	assert.Equal(t, "Infra Pipeline", got[0].Title)
}

func TestSelectDifficultyBreaksTies(t *testing.T) {
	c := selectionCatalog()

	t.Run("junior prefers beginner", func(t *testing.T) {
		// First Container (1 overlap + 0.5 beginner bonus) beats
		// Containerized API (1 overlap + 0.25 intermediate bonus).
		got := c.Select([]string{"Docker"}, schema.LevelJunior, 10)
		require.NotEmpty(t, got)
		assert.Equal(t, "First Container", got[0].Title)
	})

	t.Run("senior prefers advanced", func(t *testing.T) {
		got := c.Select([]string{"Docker"}, schema.LevelSenior, 10)
		require.NotEmpty(t, got)
		assert.Equal(t, "Infra Pipeline", got[0].Title)
	})
}

func TestSelectEqualScoresKeepCatalogOrder(t *testing.T) {
	c := CatalogFromTemplates([]Template{
		{Title: "A", SkillsAddressed: []string{"Go"}, Difficulty: schema.DifficultyIntermediate},
		{Title: "B", SkillsAddressed: []string{"Go"}, Difficulty: schema.DifficultyIntermediate},
	})

	got := c.Select([]string{"go"}, schema.LevelMid, 10)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "B", got[1].Title)
}

func TestSelectCaseInsensitiveOverlap(t *testing.T) {
	c := selectionCatalog()

	got := c.Select([]string{"DOCKER"}, schema.LevelMid, 10)
	assert.NotEmpty(t, got)
}

func TestSelectRespectsMaxResults(t *testing.T) {
	c := selectionCatalog()

	got := c.Select([]string{"Docker", "Kubernetes", "Terraform", "React"}, schema.LevelMid, 2)
	assert.Len(t, got, 2)
}

func TestLoadCatalogShipsValidTemplates(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	for _, tpl := range c.templates {
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.SkillsAddressed)
		assert.LessOrEqual(t, len(tpl.SkillsAddressed), maxSkillsPerRecommendation)
		assert.True(t, schema.ValidScope(tpl.EstimatedScope), "template %q has invalid scope", tpl.Title)
	}
}
