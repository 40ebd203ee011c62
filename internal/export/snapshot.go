// Package export produces shareable artifacts from a completed
// analysis: a self-contained JSON snapshot and a Markdown rendering.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skillbridge/skillbridge/internal/schema"
)

// Snapshot is a self-contained skill-gap export. It carries enough
// metadata to be interpreted without the engine running.
type Snapshot struct {
	ExportedAt    string                 `json:"exported_at"`
	EngineVersion string                 `json:"engine_version"`
	SchemaVersion string                 `json:"schema_version"`
	Analysis      *schema.AnalysisResult `json:"analysis"`
}

// NewSnapshot wraps an analysis result in a shareable snapshot.
func NewSnapshot(result *schema.AnalysisResult, engineVersion string) *Snapshot {
	return &Snapshot{
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		EngineVersion: engineVersion,
		SchemaVersion: result.SchemaVersion,
		Analysis:      result,
	}
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
