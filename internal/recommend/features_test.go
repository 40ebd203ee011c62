package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/schema"
)

func TestLoadFeatures(t *testing.T) {
	fs, err := LoadFeatures()
	require.NoError(t, err)

	t.Run("case insensitive lookup", func(t *testing.T) {
		lower := fs.For("docker", schema.DifficultyBeginner)
		upper := fs.For("Docker", schema.DifficultyBeginner)
		require.NotEmpty(t, lower)
		assert.Equal(t, lower, upper)
	})

	t.Run("unknown skill returns nil", func(t *testing.T) {
		assert.Nil(t, fs.For("fortran", schema.DifficultyBeginner))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := fs.For("docker", schema.DifficultyAdvanced)
		require.NotEmpty(t, first)
		first[0] = "mutated"
		assert.NotEqual(t, "mutated", fs.For("docker", schema.DifficultyAdvanced)[0])
	})

	t.Run("every skill covers all difficulty tiers", func(t *testing.T) {
		for _, skill := range []string{"kubernetes", "terraform", "react", "postgresql"} {
			for _, tier := range []schema.DifficultyTier{
				schema.DifficultyBeginner, schema.DifficultyIntermediate, schema.DifficultyAdvanced,
			} {
				assert.NotEmpty(t, fs.For(skill, tier), "%s/%s", skill, tier)
			}
		}
	})
}

func TestLoadResources(t *testing.T) {
	ri, err := LoadResources()
	require.NoError(t, err)

	links := ri.For("Kubernetes")
	require.NotEmpty(t, links)
	for _, l := range links {
		assert.NotEmpty(t, l.Label)
		assert.Contains(t, l.URL, "https://")
	}

	assert.Empty(t, ri.For("made-up-skill"))
}
