// Package scenario loads YAML batch files for the CLI test-runner
// collaborator: named sample streams paired with the class parameters
// and residue policy to run them through, following the struct-tag
// config pattern the retrieved chaos-utils pack uses for its own YAML
// scenario files.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rainflow/policy"
)

// File is the top-level shape of a scenario YAML document: a batch of
// named streams sharing one set of class parameters and a residue
// policy, with an optional per-file Wöhler override.
type File struct {
	Name       string   `yaml:"name"`
	Classes    Classes  `yaml:"classes"`
	PolicyName string   `yaml:"policy"`
	Wohler     *Wohler  `yaml:"wohler,omitempty"`
	Streams    []Stream `yaml:"streams"`
}

// Classes mirrors class.Params's constructor arguments.
type Classes struct {
	N uint32  `yaml:"n"`
	W float64 `yaml:"w"`
	O float64 `yaml:"o"`
	H float64 `yaml:"h"`
}

// Wohler mirrors damage.NewWohler's constructor arguments.
type Wohler struct {
	SD float64 `yaml:"sd"`
	ND float64 `yaml:"nd"`
	K  float64 `yaml:"k"`
}

// Stream is one named sample sequence to feed through an engine.
type Stream struct {
	Name    string    `yaml:"name"`
	Samples []float64 `yaml:"samples"`
}

// Load reads and parses a scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if len(f.Streams) == 0 {
		return nil, fmt.Errorf("scenario: %s defines no streams", path)
	}

	return &f, nil
}

// Policy resolves the scenario's policy field to a policy.ResiduePolicy,
// defaulting to policy.None when the field is empty.
func (f *File) Policy() (policy.ResiduePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(f.PolicyName)) {
	case "", "none", "ignore":
		return policy.None, nil
	case "discard":
		return policy.Discard, nil
	case "halfcycles", "half_cycles", "half":
		return policy.HalfCycles, nil
	case "fullcycles", "full_cycles", "full":
		return policy.FullCycles, nil
	case "repeated":
		return policy.Repeated, nil
	case "clormannseeger", "clormann_seeger":
		return policy.ClormannSeeger, nil
	case "rpdin45667", "rp_din45667":
		return policy.RPDIN45667, nil
	default:
		return 0, fmt.Errorf("scenario: unknown policy %q", f.PolicyName)
	}
}
