// Where: cli/internal/ui/tables.go
// What: Environment and project table rendering.
// Why: Present both registries the way the forms describe them, with per-environment colors.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/poruru/lifecycle-manager/cli/internal/palette"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
)

// Column headers of the environment table.
var EnvironmentHeaders = []string{"Environment Name", "Stack", "Branch"}

const projectNameHeader = "Project Name"

// TableOptions tweaks table rendering.
type TableOptions struct {
	// ShowIDs adds a derived project ID column after each link column.
	ShowIDs bool
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderEnvironments renders the environment table in registry order.
func RenderEnvironments(envs []registry.EnvironmentRecord) string {
	if len(envs) == 0 {
		return "No environments yet."
	}
	rows := make([][]string, 0, len(envs))
	for _, env := range envs {
		rows = append(rows, []string{
			palette.Style(env.Name).Render(env.Name),
			env.Stack.String(),
			env.Branch,
		})
	}
	return newTable(EnvironmentHeaders, rows)
}

// ProjectHeaders returns the project table headers for the given environments.
func ProjectHeaders(envNames []string, opts TableOptions) []string {
	headers := []string{projectNameHeader}
	for _, env := range envNames {
		headers = append(headers, env)
		if opts.ShowIDs {
			headers = append(headers, env+" ID")
		}
	}
	return headers
}

// RenderProjects renders the project table with one link column per environment.
func RenderProjects(projects []registry.ProjectRecord, envNames []string, opts TableOptions) string {
	if len(projects) == 0 {
		return "No projects yet."
	}
	headers := ProjectHeaders(envNames, opts)
	for i, env := range envNames {
		col := 1 + i
		if opts.ShowIDs {
			col = 1 + 2*i
		}
		headers[col] = palette.Style(env).Render(env)
	}

	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		row := []string{project.Name}
		for _, env := range envNames {
			row = append(row, project.Link(env))
			if opts.ShowIDs {
				row = append(row, project.ProjectID(env))
			}
		}
		rows = append(rows, row)
	}
	return newTable(headers, rows)
}

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
