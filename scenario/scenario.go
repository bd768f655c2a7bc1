package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/oracle"
	"github.com/katalvlaran/tourlab/tsp"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a file extension or format name other than
	// json, yaml or yml.
	ErrUnknownFormat = errors.New("scenario: unknown format")

	// ErrMissingNodes indicates a document without a nodes list.
	ErrMissingNodes = errors.New("scenario: missing nodes")

	// ErrInvalidNode indicates a node with a non-finite coordinate.
	ErrInvalidNode = errors.New("scenario: invalid node")
)

// Format selects the encoding.
type Format int

const (
	// FormatJSON is encoding/json with two-space indentation.
	FormatJSON Format = iota
	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat maps "json", "yaml" and "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Node is one stop. Label is optional.
type Node struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Point returns the node's coordinates.
func (n Node) Point() geometry.Point { return geometry.Pt(n.X, n.Y) }

// Parameters is the solver configuration carried by a scenario. The
// embedded tsp.Options fields sit at the top level of the block.
type Parameters struct {
	// Algorithm is the solver used by "solve"; empty means nearest-neighbor.
	Algorithm tsp.Algorithm `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// Algorithms is the set used by "compare"; empty means all registered.
	Algorithms []tsp.Algorithm `json:"algorithms,omitempty" yaml:"algorithms,omitempty"`

	// Penalty is the obstacle penalty policy name ("scaled" or "fixed").
	Penalty string `json:"penalty,omitempty" yaml:"penalty,omitempty"`

	tsp.Options `yaml:",inline"`
}

// DefaultParameters returns Parameters holding tsp.DefaultOptions().
func DefaultParameters() Parameters {
	return Parameters{Options: tsp.DefaultOptions()}
}

// PenaltyPolicy resolves Penalty, defaulting to oracle.DefaultPenalty.
func (p Parameters) PenaltyPolicy() (oracle.PenaltyPolicy, error) {
	if p.Penalty == "" {
		return oracle.DefaultPenalty, nil
	}
	pol, ok := oracle.ParsePenaltyPolicy(p.Penalty)
	if !ok {
		return oracle.DefaultPenalty, fmt.Errorf("penalty %q: %w", p.Penalty, tsp.ErrInvalidOptions)
	}
	return pol, nil
}

// Scenario is a node set, an obstacle set and solver parameters.
type Scenario struct {
	Nodes      []Node             `json:"nodes" yaml:"nodes"`
	Obstacles  []geometry.Polygon `json:"obstacles" yaml:"obstacles"`
	Parameters Parameters         `json:"parameters" yaml:"parameters"`
}

// New returns an empty scenario with default parameters.
func New() *Scenario {
	return &Scenario{Parameters: DefaultParameters()}
}

// Points returns the node coordinates in index order.
func (s *Scenario) Points() []geometry.Point {
	pts := make([]geometry.Point, len(s.Nodes))
	for i, n := range s.Nodes {
		pts[i] = n.Point()
	}
	return pts
}

// Labels returns the node labels in index order.
func (s *Scenario) Labels() []string {
	out := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = n.Label
	}
	return out
}

// fillLabels substitutes the node index for every empty label.
func (s *Scenario) fillLabels() {
	for i := range s.Nodes {
		if s.Nodes[i].Label == "" {
			s.Nodes[i].Label = DefaultLabel(i)
		}
	}
}

// DefaultLabel is the label given to node i when none is provided.
func DefaultLabel(i int) string { return strconv.Itoa(i) }

// Validate checks node coordinates, obstacle polygons, the algorithm names,
// the penalty policy and the options. All problems are joined.
func (s *Scenario) Validate() error {
	var errs []error
	for i, n := range s.Nodes {
		if !n.Point().Finite() {
			errs = append(errs, fmt.Errorf("nodes[%d]: %w", i, ErrInvalidNode))
		}
	}
	for i, poly := range s.Obstacles {
		if err := geometry.ValidatePolygon(poly); err != nil {
			errs = append(errs, fmt.Errorf("obstacles[%d]: %w", i, err))
		}
	}
	p := s.Parameters
	if p.Algorithm != "" {
		if _, err := tsp.ParseAlgorithm(string(p.Algorithm)); err != nil {
			errs = append(errs, fmt.Errorf("parameters.algorithm: %w", err))
		}
	}
	for i, a := range p.Algorithms {
		if _, err := tsp.ParseAlgorithm(string(a)); err != nil {
			errs = append(errs, fmt.Errorf("parameters.algorithms[%d]: %w", i, err))
		}
	}
	if _, err := p.PenaltyPolicy(); err != nil {
		errs = append(errs, fmt.Errorf("parameters: %w", err))
	}
	if err := p.Options.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("parameters: %w", err))
	}
	return errors.Join(errs...)
}

// document accepts both the bare scenario and the export envelope.
type document struct {
	Scenario `yaml:",inline"`
	Wrapped  *Scenario `json:"scenario,omitempty" yaml:"scenario,omitempty"`
}

// Decode reads one scenario from r.
//
// Errors: ErrMissingNodes when neither the document nor its "scenario"
// envelope carries a nodes list; decoder errors are wrapped.
func Decode(r io.Reader, f Format) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Unmarshal(data, f)
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte, f Format) (*Scenario, error) {
	doc := document{Scenario: *New(), Wrapped: New()}

	switch f {
	case FormatJSON:
		err := json.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("parsing scenario JSON: %w", err)
		}
	case FormatYAML:
		err := yaml.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("parsing scenario YAML: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	s := &doc.Scenario
	if s.Nodes == nil && doc.Wrapped != nil && doc.Wrapped.Nodes != nil {
		s = doc.Wrapped
	}
	if s.Nodes == nil {
		return nil, ErrMissingNodes
	}
	s.fillLabels()

	return s, nil
}

// Load reads a scenario file, picking the format from its extension.
func Load(path string) (*Scenario, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Unmarshal(data, f)
}

// Encode writes s to w.
func Encode(w io.Writer, s *Scenario, f Format) error {
	return encode(w, s, f)
}

// Save writes s to path, picking the format from its extension.
func Save(path string, s *Scenario) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	if err = Encode(fh, s, f); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}
