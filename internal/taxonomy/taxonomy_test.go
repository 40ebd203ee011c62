package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/schema"
)

func TestCanonicalize(t *testing.T) {
	tax := New()

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, "Python", tax.Canonicalize("python"))
		assert.Equal(t, "Python", tax.Canonicalize("PYTHON"))
		assert.Equal(t, "Node.js", tax.Canonicalize("node.js"))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "Docker", tax.Canonicalize("  docker  "))
	})

	t.Run("unknown names pass through", func(t *testing.T) {
		assert.Equal(t, "COBOL", tax.Canonicalize("COBOL"))
	})
}

func TestCategory(t *testing.T) {
	tax := New()

	cat, ok := tax.Category("react")
	require.True(t, ok)
	assert.Equal(t, schema.CategoryFramework, cat)

	_, ok = tax.Category("fortran")
	assert.False(t, ok)
}

func TestAdjacentReturnsCopy(t *testing.T) {
	tax := FromEntries(map[string]Entry{
		"Go": {schema.CategoryLanguage, []string{"Docker", "gRPC"}},
	})

	adj := tax.Adjacent("go")
	require.Equal(t, []string{"Docker", "gRPC"}, adj)

	adj[0] = "mutated"
	assert.Equal(t, []string{"Docker", "gRPC"}, tax.Adjacent("go"))
}

func TestAdjacentUnknownSkill(t *testing.T) {
	tax := New()
	assert.Empty(t, tax.Adjacent("brainfuck"))
}

func TestSkillDefaultsToConcept(t *testing.T) {
	tax := New()

	assert.Equal(t, schema.Skill{Name: "Python", Category: schema.CategoryLanguage}, tax.Skill("Python"))
	assert.Equal(t, schema.Skill{Name: "Event Sourcing", Category: schema.CategoryConcept}, tax.Skill("Event Sourcing"))
}

func TestNamesSorted(t *testing.T) {
	tax := FromEntries(map[string]Entry{
		"Redis":      {schema.CategoryInfrastructure, nil},
		"Go":         {schema.CategoryLanguage, nil},
		"PostgreSQL": {schema.CategoryInfrastructure, nil},
	})

	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, tax.Names())
	assert.Equal(t, 3, tax.Len())
}

func TestBuiltinGraphIsWellFormed(t *testing.T) {
	tax := New()
	require.Greater(t, tax.Len(), 50)

	for _, name := range tax.Names() {
		_, ok := tax.Category(name)
		assert.True(t, ok, "skill %q has no category", name)
	}
}
