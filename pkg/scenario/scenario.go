package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Scenario describes one teaching run: which algorithm to animate and the
// inputs to feed it. Scenarios are plain YAML files authored by hand.
type Scenario struct {
	Name      string         `yaml:"name"`
	Algorithm string         `yaml:"algorithm"`
	Speed     string         `yaml:"speed,omitempty"` // per-step interval, e.g. "400ms"
	Inputs    map[string]any `yaml:"inputs"`
}

// Interval parses the configured per-step interval, falling back to def.
func (s *Scenario) Interval(def time.Duration) time.Duration {
	if s.Speed == "" {
		return def
	}
	d, err := time.ParseDuration(s.Speed)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Algorithm == "" {
		return nil, domain.InvalidInput("algorithm", "must be set")
	}
	if s.Inputs == nil {
		return nil, domain.InvalidInput("inputs", "must be set")
	}
	return &s, nil
}

// Load reads a scenario file from disk.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

// LoadDir reads every .yaml/.yml scenario in a directory, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
