// Where: cli/internal/registry/session_test.go
// What: Tests for session registry operations and cascades.
// Why: Lock down ordering, atomic failures, and the project/environment key invariant.
package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEnvironmentAppendsInOrder(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddEnvironment("dev", StackEU, "develop")
	require.NoError(t, err)
	_, err = s.AddEnvironment("qa", StackUS, "release")
	require.NoError(t, err)

	assert.Equal(t, []EnvironmentRecord{
		{Name: "prod", Stack: StackUS, Branch: "main"},
		{Name: "dev", Stack: StackEU, Branch: "develop"},
		{Name: "qa", Stack: StackUS, Branch: "release"},
	}, s.Environments())
}

func TestAddEnvironmentDuplicateLeavesRegistryUnchanged(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)

	_, err = s.AddEnvironment("prod", StackEU, "other")
	require.ErrorIs(t, err, ErrDuplicateName)

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "prod", dup.Name)
	assert.Equal(t, []EnvironmentRecord{{Name: "prod", Stack: StackUS, Branch: "main"}}, s.Environments())
}

func TestAddEnvironmentValidation(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		stack  Stack
		branch string
	}{
		{name: "empty name", env: "", stack: StackUS, branch: "main"},
		{name: "blank name", env: "   ", stack: StackUS, branch: "main"},
		{name: "empty stack", env: "prod", stack: "", branch: "main"},
		{name: "unknown stack", env: "prod", stack: "APAC", branch: "main"},
		{name: "empty branch", env: "prod", stack: StackEU, branch: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			_, err := s.AddEnvironment(tt.env, tt.stack, tt.branch)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, s.Environments())
		})
	}
}

func TestAddEnvironmentTrimsFields(t *testing.T) {
	s := NewSession()
	record, err := s.AddEnvironment("  prod ", StackUS, " main ")
	require.NoError(t, err)
	assert.Equal(t, EnvironmentRecord{Name: "prod", Stack: StackUS, Branch: "main"}, record)
}

func TestAddEnvironmentExtendsExistingProjects(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddProject("checkout", map[string]string{"prod": "https://x.keboola.com/projects/99"})
	require.NoError(t, err)

	_, err = s.AddEnvironment("dev", StackEU, "develop")
	require.NoError(t, err)

	project, ok := s.Project("checkout")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"prod": "https://x.keboola.com/projects/99", "dev": ""}, project.Links)
	assert.Equal(t, map[string]string{"prod": "99", "dev": ""}, project.ProjectIDs)
	require.NoError(t, s.Check())
}

func TestRemoveEnvironmentNotFound(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)

	err = s.RemoveEnvironment("staging")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.Environments(), 1)
}

func TestRemoveEnvironmentCascadesWithoutDroppingProjects(t *testing.T) {
	s := NewSession()
	for _, name := range []string{"prod", "dev"} {
		_, err := s.AddEnvironment(name, StackUS, "main")
		require.NoError(t, err)
	}
	for _, name := range []string{"checkout", "billing"} {
		_, err := s.AddProject(name, map[string]string{
			"prod": "https://connection.keboola.com/admin/projects/1",
			"dev":  "https://connection.eu-central-1.keboola.com/admin/projects/2",
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveEnvironment("prod"))

	projects := s.Projects()
	require.Len(t, projects, 2)
	for _, project := range projects {
		assert.NotContains(t, project.Links, "prod")
		assert.NotContains(t, project.ProjectIDs, "prod")
		assert.Equal(t, "2", project.ProjectID("dev"))
	}
	require.NoError(t, s.Check())
}

func TestAddProjectRequiresEnvironments(t *testing.T) {
	s := NewSession()
	_, err := s.AddProject("checkout", nil)
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, s.Projects())
}

func TestAddProjectRejectsEmptyAndUsedNames(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)

	_, err = s.AddProject(" ", nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddProject("checkout", nil)
	require.NoError(t, err)
	_, err = s.AddProject("checkout", map[string]string{"prod": "https://x.keboola.com/projects/5"})
	require.ErrorIs(t, err, ErrValidation)

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "", projects[0].Link("prod"))
}

func TestAddProjectSnapshotsEnvironments(t *testing.T) {
	s := NewSession()
	for _, name := range []string{"prod", "dev"} {
		_, err := s.AddEnvironment(name, StackEU, "main")
		require.NoError(t, err)
	}

	record, err := s.AddProject("checkout", map[string]string{
		"prod":    "https://example.com/foo",
		"unknown": "https://x.keboola.com/projects/7",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"prod": "https://example.com/foo", "dev": ""}, record.Links)
	assert.Equal(t, map[string]string{"prod": "", "dev": ""}, record.ProjectIDs)
}

func TestRemoveProject(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddProject("checkout", nil)
	require.NoError(t, err)

	require.ErrorIs(t, s.RemoveProject("billing"), ErrNotFound)
	require.NoError(t, s.RemoveProject("checkout"))
	assert.Empty(t, s.Projects())
	assert.Len(t, s.Environments(), 1)
}

func TestSetLinkRecomputesProjectID(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddProject("checkout", nil)
	require.NoError(t, err)

	record, err := s.SetLink("checkout", "prod", "https://connection.keboola.com/admin/projects/12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", record.ProjectID("prod"))

	_, err = s.SetLink("checkout", "dev", "https://x.keboola.com/projects/1")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.SetLink("billing", "prod", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddProject("checkout", map[string]string{"prod": "https://x.keboola.com/projects/1"})
	require.NoError(t, err)

	envs := s.Environments()
	envs[0].Name = "mutated"
	projects := s.Projects()
	projects[0].Links["prod"] = "mutated"

	assert.Equal(t, "prod", s.Environments()[0].Name)
	project, _ := s.Project("checkout")
	assert.Equal(t, "https://x.keboola.com/projects/1", project.Link("prod"))
}

func TestEndToEndScenario(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)

	record, err := s.AddProject("checkout", map[string]string{"prod": "https://x.keboola.com/projects/99"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"prod": "https://x.keboola.com/projects/99"}, record.Links)
	assert.Equal(t, map[string]string{"prod": "99"}, record.ProjectIDs)

	require.NoError(t, s.RemoveEnvironment("prod"))

	project, ok := s.Project("checkout")
	require.True(t, ok)
	assert.Equal(t, "checkout", project.Name)
	assert.Empty(t, project.Links)
	assert.Empty(t, project.ProjectIDs)
	require.NoError(t, s.Check())
}

func TestOnEnvironmentRemovedIsIdempotent(t *testing.T) {
	s := NewSession()
	_, err := s.AddEnvironment("prod", StackUS, "main")
	require.NoError(t, err)
	_, err = s.AddProject("checkout", nil)
	require.NoError(t, err)

	s.projects.OnEnvironmentRemoved("dev")
	s.projects.OnEnvironmentRemoved("dev")

	project, _ := s.Project("checkout")
	assert.Equal(t, map[string]string{"prod": ""}, project.Links)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "branch is required", required("branch").Error())
	assert.Equal(t, `environment "prod" already exists`, (&DuplicateNameError{Kind: "environment", Name: "prod"}).Error())
	assert.Equal(t, `project "x" not found`, (&NotFoundError{Kind: "project", Name: "x"}).Error())
	assert.False(t, errors.Is(&NotFoundError{}, ErrValidation))
}
