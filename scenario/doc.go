// Package scenario reads and writes planning scenarios: a node list, an
// obstacle list and a parameters block.
//
// Two encodings are supported, JSON and YAML (gopkg.in/yaml.v3), with the
// same field names in both:
//
//	nodes:
//	  - {x: 0, y: 0, label: depot}
//	  - {x: 120, y: 40}
//	obstacles:
//	  - [{x: 40, y: 10}, {x: 60, y: 10}, {x: 60, y: 30}, {x: 40, y: 30}]
//	parameters:
//	  algorithm: christofides
//	  seed: 7
//	  genetic: {mutationRate: 0.1}
//
// Decoding is lenient: unknown fields are ignored, a missing label defaults
// to the node index, and parameters are decoded on top of
// tsp.DefaultOptions(), so a partial block only overrides what it names.
// The export envelope {metadata, scenario, results} produced by Export is
// accepted as input too.
//
// The package performs no logging. Validate reports every problem it finds
// at once via errors.Join.
package scenario
