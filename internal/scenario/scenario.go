// Where: cli/internal/scenario/scenario.go
// What: Scripted registry sessions loaded from YAML.
// Why: Replay the same form submissions without an interactive terminal.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Action names one registry operation.
type Action string

const (
	AddEnvironment    Action = "add-environment"
	RemoveEnvironment Action = "remove-environment"
	AddProject        Action = "add-project"
	RemoveProject     Action = "remove-project"
	SetLink           Action = "set-link"
)

// Scenario is an ordered list of registry operations.
type Scenario struct {
	Version int    `yaml:"version,omitempty"`
	Steps   []Step `yaml:"steps"`
}

// Step is one form submission. Which fields apply depends on Action.
type Step struct {
	Action      Action            `yaml:"action"`
	Name        string            `yaml:"name"`
	Stack       string            `yaml:"stack,omitempty"`
	Branch      string            `yaml:"branch,omitempty"`
	Environment string            `yaml:"environment,omitempty"`
	Link        string            `yaml:"link,omitempty"`
	Links       map[string]string `yaml:"links,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(payload)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse validates payload against the scenario schema and decodes it.
func Parse(payload []byte) (Scenario, error) {
	if err := validate(payload); err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(payload, &sc); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	return sc, nil
}
