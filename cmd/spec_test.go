package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/schema"
)

func writeAnalysisFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const bareResult = `{
	"schema_version": "1.0",
	"strengths": [{"name": "Python", "category": "language"}],
	"gaps": [{"name": "Kubernetes", "category": "infrastructure"}],
	"recommendations": [{
		"title": "Containerize a service",
		"description": "d",
		"skills_addressed": ["Docker"],
		"estimated_scope": "medium"
	}],
	"experience_level": "mid"
}`

func TestLoadAnalysisBareResult(t *testing.T) {
	path := writeAnalysisFile(t, bareResult)

	result, err := loadAnalysis(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", result.SchemaVersion)
	require.Len(t, result.Strengths, 1)
	assert.Equal(t, schema.Skill{Name: "Python", Category: schema.CategoryLanguage}, result.Strengths[0])
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Containerize a service", result.Recommendations[0].Title)
	assert.Equal(t, schema.ScopeMedium, result.Recommendations[0].EstimatedScope)
}

func TestLoadAnalysisSnapshotWrapper(t *testing.T) {
	path := writeAnalysisFile(t, `{
		"exported_at": "2026-08-28T12:00:00Z",
		"engine_version": "1.2.3",
		"schema_version": "1.0",
		"analysis": `+bareResult+`
	}`)

	result, err := loadAnalysis(path)
	require.NoError(t, err)

	assert.Equal(t, "mid", result.ExperienceLevel)
	assert.Len(t, result.Gaps, 1)
}

func TestLoadAnalysisErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadAnalysis(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading analysis file")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeAnalysisFile(t, "{not json")
		_, err := loadAnalysis(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing analysis file")
	})
}
