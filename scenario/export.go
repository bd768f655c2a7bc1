package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/tourlab/metrics"
)

// ExportVersion is written to Metadata.Version.
const ExportVersion = "2.0"

// now is replaced in tests.
var now = time.Now

// Metadata summarizes an exported scenario.
type Metadata struct {
	Timestamp     string `json:"timestamp" yaml:"timestamp"`
	Version       string `json:"version" yaml:"version"`
	NodeCount     int    `json:"nodeCount" yaml:"nodeCount"`
	ObstacleCount int    `json:"obstacleCount" yaml:"obstacleCount"`
	HasResults    bool   `json:"hasResults" yaml:"hasResults"`
}

// Envelope is the export document: the scenario plus the comparison
// results keyed by algorithm name.
type Envelope struct {
	Metadata Metadata                  `json:"metadata" yaml:"metadata"`
	Scenario *Scenario                 `json:"scenario" yaml:"scenario"`
	Results  map[string]metrics.Report `json:"results,omitempty" yaml:"-"`

	// YAMLResults mirrors Results with the JSON field names, since Report
	// carries JSON tags only.
	YAMLResults map[string]any `json:"-" yaml:"results,omitempty"`
}

// NewEnvelope wraps s and reports for export.
func NewEnvelope(s *Scenario, reports []metrics.Report) Envelope {
	env := Envelope{
		Metadata: Metadata{
			Timestamp:     now().UTC().Format(time.RFC3339),
			Version:       ExportVersion,
			NodeCount:     len(s.Nodes),
			ObstacleCount: len(s.Obstacles),
			HasResults:    len(reports) > 0,
		},
		Scenario: s,
	}
	if len(reports) > 0 {
		env.Results = make(map[string]metrics.Report, len(reports))
		for _, r := range reports {
			env.Results[string(r.Algorithm)] = r
		}
	}
	return env
}

// Export writes the envelope for s and reports to w. Decode reads it back.
func Export(w io.Writer, s *Scenario, reports []metrics.Report, f Format) error {
	env := NewEnvelope(s, reports)
	if f == FormatYAML && env.Results != nil {
		raw, err := json.Marshal(env.Results)
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		if err = json.Unmarshal(raw, &env.YAMLResults); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
	}
	return encode(w, env, f)
}
