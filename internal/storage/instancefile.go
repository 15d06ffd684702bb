package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

// LoadInstanceFile reads a replenishment instance from a JSON or YAML file,
// selected by extension. The result is validated before being returned.
func LoadInstanceFile(path string) (solver.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solver.Instance{}, fmt.Errorf("read instance file: %w", err)
	}

	var inst solver.Instance
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &inst); err != nil {
			return solver.Instance{}, fmt.Errorf("parse JSON instance: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &inst); err != nil {
			return solver.Instance{}, fmt.Errorf("parse YAML instance: %w", err)
		}
	default:
		return solver.Instance{}, fmt.Errorf("unsupported instance file extension %q", ext)
	}

	if err := solver.Validate(inst); err != nil {
		return solver.Instance{}, fmt.Errorf("invalid instance in %s: %w", path, err)
	}

	return inst, nil
}
