// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// actionsFile is the YAML shape for user-defined actions.
type actionsFile struct {
	Actions []fileAction `yaml:"actions"`
}

type fileAction struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Template    []string `yaml:"template"`
	Mutating    bool     `yaml:"mutating"`
}

// LoadFile reads user-defined action specs from a YAML file. A missing
// file is not an error: it simply yields no custom actions. Loaded specs
// are intended to be appended after the built-ins so they can shadow them.
func LoadFile(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading actions file: %w", err)
	}

	var file actionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing actions file %s: %w", path, err)
	}

	specs := make([]Spec, 0, len(file.Actions))
	for _, a := range file.Actions {
		if a.ID == "" {
			return nil, fmt.Errorf("actions file %s: action with empty id", path)
		}
		if len(a.Template) == 0 {
			return nil, fmt.Errorf("actions file %s: action %q has an empty template", path, a.ID)
		}
		specs = append(specs, Spec{
			ID:          a.ID,
			Description: a.Description,
			Template:    a.Template,
			Mutating:    a.Mutating,
		})
	}

	return specs, nil
}
