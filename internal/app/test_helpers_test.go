// Where: cli/internal/app/test_helpers_test.go
// What: Shared fixtures for app command tests.
// Why: Run commands without a terminal, a home directory, or stderr noise.
package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/lifecycle-manager/cli/internal/config"
	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
)

func testDeps(out io.Writer) Dependencies {
	return Dependencies{
		Out:    out,
		LogOut: io.Discard,
		LoadConfig: func() (config.GlobalConfig, string, error) {
			return config.DefaultGlobalConfig(), "", nil
		},
	}
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

// scriptedPrompter answers prompts from queues and aborts once a queue runs dry.
type scriptedPrompter struct {
	selects      []string
	inputs       []string
	confirms     []bool
	envForms     []interaction.EnvironmentInput
	projectForms []interaction.ProjectInput

	titles []string
}

func (p *scriptedPrompter) Input(title string, _ []string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.inputs) == 0 {
		return "", interaction.ErrAborted
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptedPrompter) Select(title string, _ []string) (string, error) {
	p.titles = append(p.titles, title)
	return p.nextSelect()
}

func (p *scriptedPrompter) SelectValue(title string, _ []interaction.SelectOption) (string, error) {
	p.titles = append(p.titles, title)
	return p.nextSelect()
}

func (p *scriptedPrompter) Confirm(title string) (bool, error) {
	p.titles = append(p.titles, title)
	if len(p.confirms) == 0 {
		return false, interaction.ErrAborted
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptedPrompter) EnvironmentForm(_ []string, defaultStack string) (interaction.EnvironmentInput, error) {
	p.titles = append(p.titles, "environment form")
	if len(p.envForms) == 0 {
		return interaction.EnvironmentInput{}, interaction.ErrAborted
	}
	v := p.envForms[0]
	p.envForms = p.envForms[1:]
	if v.Stack == "" {
		v.Stack = defaultStack
	}
	return v, nil
}

func (p *scriptedPrompter) ProjectForm(_ []string) (interaction.ProjectInput, error) {
	p.titles = append(p.titles, "project form")
	if len(p.projectForms) == 0 {
		return interaction.ProjectInput{}, interaction.ErrAborted
	}
	v := p.projectForms[0]
	p.projectForms = p.projectForms[1:]
	return v, nil
}

func (p *scriptedPrompter) nextSelect() (string, error) {
	if len(p.selects) == 0 {
		return "", interaction.ErrAborted
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}
