// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/QuadnucYard/dsa-practice-code/matfile"
	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// ManifestName is the file Run writes next to the matrices.
const ManifestName = "manifest.yaml"

// Manifest records how a directory of fixtures was produced. The byte
// order is always the concrete one ("little" or "big") so a manifest stays
// valid when the files move to a host of the other endianness.
type Manifest struct {
	RunID     string     `yaml:"run_id"`
	Version   int        `yaml:"format_version"`
	Layout    string     `yaml:"layout"`
	Order     string     `yaml:"byte_order"`
	LoopOrder string     `yaml:"loop_order"`
	Seed      *int64     `yaml:"seed,omitempty"`
	Sets      []SetEntry `yaml:"sets"`
}

// SetEntry is one set of the run.
type SetEntry struct {
	Dims  `yaml:",inline"`
	Names `yaml:",inline"`
}

// Format parses Layout and Order.
func (m *Manifest) Format() (matfile.Format, error) {
	return matfile.ParseFormat(m.Layout, m.Order)
}

// Jobs returns the sets as Jobs, in file order.
func (m *Manifest) Jobs() []Job {
	jobs := make([]Job, len(m.Sets))
	for i, s := range m.Sets {
		jobs[i] = Job{Dims: s.Dims, Names: s.Names}
	}

	return jobs
}

// Plan returns the Format, loop order and Jobs recorded in m.
func (m *Manifest) Plan() (Plan, error) {
	f, err := m.Format()
	if err != nil {
		return Plan{}, fmt.Errorf("manifest %s: %w", m.RunID, err)
	}
	lo := matrix.DefaultLoopOrder
	if m.LoopOrder != "" {
		if lo, err = matrix.ParseLoopOrder(m.LoopOrder); err != nil {
			return Plan{}, fmt.Errorf("manifest %s: %w", m.RunID, err)
		}
	}

	return Plan{Format: f, LoopOrder: lo, Jobs: m.Jobs()}, nil
}

// WriteManifest encodes m as YAML at path (created or truncated).
func WriteManifest(path string, m *Manifest) error {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("fixture: manifest: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("fixture: manifest: %w", err)
	}

	return nil
}

// ReadManifest decodes the YAML manifest at path.
//
// Errors:
//   - *fs.PathError (matching fs.ErrNotExist) when path is missing.
//   - ErrManifestVersion when format_version is not matfile.FormatVersion.
func ReadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: manifest: %w", err)
	}
	var m Manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("fixture: manifest %s: %w", path, err)
	}
	if m.Version != matfile.FormatVersion {
		return nil, fmt.Errorf("fixture: manifest %s: version %d: %w", path, m.Version, ErrManifestVersion)
	}

	return &m, nil
}
