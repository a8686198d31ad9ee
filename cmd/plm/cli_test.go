// Where: cli/cmd/plm/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies only wires prompts on a terminal.
package main

import (
	"bytes"
	"testing"

	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
)

func stubWiring(t *testing.T, terminal bool) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	origOut, origErr, origTerminal := stdout, stderr, isTerminal
	t.Cleanup(func() {
		stdout = origOut
		stderr = origErr
		isTerminal = origTerminal
	})

	var out, errOut bytes.Buffer
	stdout = &out
	stderr = &errOut
	isTerminal = func() bool { return terminal }
	return &out, &errOut
}

func TestBuildDependenciesOnTerminal(t *testing.T) {
	out, errOut := stubWiring(t, true)

	deps := buildDependencies()
	if deps.Out != out {
		t.Fatalf("expected stdout writer")
	}
	if deps.LogOut != errOut {
		t.Fatalf("expected stderr log writer")
	}
	if deps.LoadConfig == nil {
		t.Fatalf("expected config loader")
	}
	if _, ok := deps.Prompter.(interaction.HuhPrompter); !ok {
		t.Fatalf("expected huh prompter, got %T", deps.Prompter)
	}
}

func TestBuildDependenciesWithoutTerminal(t *testing.T) {
	stubWiring(t, false)

	deps := buildDependencies()
	if deps.Prompter != nil {
		t.Fatalf("expected no prompter, got %T", deps.Prompter)
	}
}
