// Where: cli/internal/registry/registry.go
// What: Environment and project record types.
// Why: Replace ad-hoc table columns with explicit records the session can keep consistent.
package registry

import (
	"maps"
	"strings"
)

// Stack is the region an environment deploys to.
type Stack string

const (
	StackUS Stack = "US"
	StackEU Stack = "EU"
)

// Stacks lists the supported stacks in display order.
var Stacks = []Stack{StackUS, StackEU}

// ParseStack resolves a stack name case-insensitively.
func ParseStack(value string) (Stack, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", required("stack")
	}
	for _, stack := range Stacks {
		if strings.EqualFold(trimmed, string(stack)) {
			return stack, nil
		}
	}
	return "", &ValidationError{Field: "stack", Reason: "must be one of US, EU"}
}

func (s Stack) validate() error {
	if s == "" {
		return required("stack")
	}
	for _, stack := range Stacks {
		if s == stack {
			return nil
		}
	}
	return &ValidationError{Field: "stack", Reason: "must be one of US, EU"}
}

func (s Stack) String() string {
	return string(s)
}

// EnvironmentRecord is one row of the environment table.
type EnvironmentRecord struct {
	Name   string
	Stack  Stack
	Branch string
}

// ProjectRecord maps a project to its per-environment links and derived IDs.
// Links and ProjectIDs are always keyed by exactly the registered environments.
type ProjectRecord struct {
	Name       string
	Links      map[string]string
	ProjectIDs map[string]string
}

// Link returns the link stored for env, or "" when none.
func (p ProjectRecord) Link(env string) string {
	return p.Links[env]
}

// ProjectID returns the ID derived for env, or "" when none.
func (p ProjectRecord) ProjectID(env string) string {
	return p.ProjectIDs[env]
}

// Clone returns a deep copy so callers cannot mutate session state.
func (p ProjectRecord) Clone() ProjectRecord {
	return ProjectRecord{
		Name:       p.Name,
		Links:      maps.Clone(p.Links),
		ProjectIDs: maps.Clone(p.ProjectIDs),
	}
}
