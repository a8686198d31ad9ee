// Where: cli/internal/registry/session.go
// What: Session state owning both registries.
// Why: Apply every mutation through one object so environment changes cascade to projects.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Session owns the environment and project registries of one interactive session.
// It is not safe for concurrent use; each session must own its own instance.
type Session struct {
	envs     Environments
	projects Projects
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// AddEnvironment appends an environment and gives every project an empty entry for it.
func (s *Session) AddEnvironment(name string, stack Stack, branch string) (EnvironmentRecord, error) {
	record, err := s.envs.prepare(name, stack, branch)
	if err != nil {
		return EnvironmentRecord{}, err
	}
	s.envs.append(record)
	s.projects.OnEnvironmentAdded(record.Name)
	return record, nil
}

// RemoveEnvironment deletes an environment and drops its entries from every project.
func (s *Session) RemoveEnvironment(name string) error {
	name = strings.TrimSpace(name)
	if err := s.envs.remove(name); err != nil {
		return err
	}
	s.projects.OnEnvironmentRemoved(name)
	return nil
}

// AddProject registers a project with one link per known environment.
// Links for unknown environments are ignored; missing ones default to "".
func (s *Session) AddProject(name string, links map[string]string) (ProjectRecord, error) {
	record, err := s.projects.prepare(name, links, s.envs.Names())
	if err != nil {
		return ProjectRecord{}, err
	}
	s.projects.append(record)
	return record.Clone(), nil
}

// RemoveProject deletes a project by name.
func (s *Session) RemoveProject(name string) error {
	return s.projects.remove(strings.TrimSpace(name))
}

// SetLink replaces one project link and recomputes its project ID.
func (s *Session) SetLink(project, env, link string) (ProjectRecord, error) {
	project = strings.TrimSpace(project)
	env = strings.TrimSpace(env)
	if !s.projects.Has(project) {
		return ProjectRecord{}, &NotFoundError{Kind: "project", Name: project}
	}
	if !s.envs.Has(env) {
		return ProjectRecord{}, &NotFoundError{Kind: "environment", Name: env}
	}
	if err := s.projects.setLink(project, env, link); err != nil {
		return ProjectRecord{}, err
	}
	record, _ := s.projects.Get(project)
	return record, nil
}

// Environments returns environment records in insertion order.
func (s *Session) Environments() []EnvironmentRecord {
	return s.envs.List()
}

// EnvironmentNames returns environment names in insertion order.
func (s *Session) EnvironmentNames() []string {
	return s.envs.Names()
}

// Environment looks up one environment.
func (s *Session) Environment(name string) (EnvironmentRecord, bool) {
	return s.envs.Get(name)
}

// Projects returns project records in insertion order.
func (s *Session) Projects() []ProjectRecord {
	return s.projects.List()
}

// ProjectNames returns project names in insertion order.
func (s *Session) ProjectNames() []string {
	names := make([]string, 0, s.projects.Len())
	for _, record := range s.projects.records {
		names = append(names, record.Name)
	}
	return names
}

// Project looks up one project.
func (s *Session) Project(name string) (ProjectRecord, bool) {
	return s.projects.Get(name)
}

// Check verifies that every project is keyed by exactly the registered environments.
func (s *Session) Check() error {
	want := s.envs.Names()
	slices.Sort(want)
	for _, record := range s.projects.records {
		links := slices.Sorted(maps.Keys(record.Links))
		ids := slices.Sorted(maps.Keys(record.ProjectIDs))
		if !slices.Equal(links, want) {
			return fmt.Errorf("project %q links keyed by %v, environments are %v", record.Name, links, want)
		}
		if !slices.Equal(ids, want) {
			return fmt.Errorf("project %q ids keyed by %v, environments are %v", record.Name, ids, want)
		}
	}
	return nil
}
