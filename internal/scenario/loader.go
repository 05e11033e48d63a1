package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a scenario file. The format follows the
// extension: .json is JSON, anything else (.yaml, .yml) is YAML.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s Scenario
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("json unmarshal %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario validation after load: %w", err)
	}
	return &s, nil
}

// Save writes the scenario as YAML, the authoring format.
func Save(path string, s *Scenario) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("scenario validation before save: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteReport writes a run report as indented JSON.
func WriteReport(path string, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
