// Where: cli/internal/app/session.go
// What: Interactive session command.
// Why: Drive the add/delete forms against one in-memory session and re-render after each change.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru/lifecycle-manager/cli/internal/interaction"
	"github.com/poruru/lifecycle-manager/cli/internal/meta"
	"github.com/poruru/lifecycle-manager/cli/internal/pipeline"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
	"github.com/poruru/lifecycle-manager/cli/internal/scenario"
	"github.com/poruru/lifecycle-manager/cli/internal/ui"
	"go.uber.org/zap"
)

// SessionCmd starts the interactive form loop.
type SessionCmd struct {
	Script string `help:"Scenario file applied before the first prompt" type:"existingfile"`
	IDs    bool   `name:"ids" help:"Show derived project ID columns"`
}

const (
	actionAddEnvironment    = "add-environment"
	actionRemoveEnvironment = "remove-environment"
	actionAddProject        = "add-project"
	actionRemoveProject     = "remove-project"
	actionSetLink           = "set-link"
	actionPipeline          = "pipeline"
	actionShow              = "show"
	actionQuit              = "quit"
)

var sessionMenu = []interaction.SelectOption{
	{Label: "➕ Add a new environment", Value: actionAddEnvironment},
	{Label: "➖ Delete an environment", Value: actionRemoveEnvironment},
	{Label: "➕ Add a new project", Value: actionAddProject},
	{Label: "➖ Delete a project", Value: actionRemoveProject},
	{Label: "🔗 Set a project link", Value: actionSetLink},
	{Label: "🚀 Pipeline actions", Value: actionPipeline},
	{Label: "📋 Show tables", Value: actionShow},
	{Label: "Quit", Value: actionQuit},
}

// isInteractive reports whether stdin can drive huh prompts.
var isInteractive = func() bool {
	return interaction.IsTerminal(os.Stdin)
}

// sessionLoop owns the registry state for one interactive session.
type sessionLoop struct {
	session  *registry.Session
	prompter interaction.Prompter
	console  *ui.Console
	logger   *zap.Logger
	tables   ui.TableOptions
	stack    string
	platform pipeline.Platform
}

func runSession(cli CLI, deps Dependencies, out io.Writer) int {
	rt, err := newCommandRuntime(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	defer func() { _ = rt.Logger.Sync() }()

	prompter := deps.Prompter
	if prompter == nil {
		if !isInteractive() {
			return exitWithSuggestion(out, "Interactive session requires a terminal.",
				[]string{meta.AppName + " run <file>"})
		}
		prompter = interaction.HuhPrompter{}
	}

	platform, err := pipeline.ParsePlatform(rt.Config.SCMPlatform)
	if err != nil {
		rt.Console.Warn(err.Error())
		platform = pipeline.GitHub
	}

	loop := &sessionLoop{
		session:  registry.NewSession(),
		prompter: prompter,
		console:  rt.Console,
		logger:   rt.Logger,
		tables:   rt.tableOptions(cli.Session.IDs),
		stack:    rt.Config.DefaultStack,
		platform: platform,
	}

	if path := strings.TrimSpace(cli.Session.Script); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return exitWithError(out, err)
		}
		result := scenario.Apply(loop.session, sc, scenario.Options{Logger: rt.Logger})
		reportScenario(rt.Console, result)
	}

	rt.Console.Header("🧭", meta.DisplayName)
	loop.render()
	if err := loop.run(); err != nil {
		return exitWithError(out, err)
	}
	rt.Console.Info("Session ended. Nothing was saved.")
	return 0
}

// run shows the action menu until the user quits or aborts.
func (l *sessionLoop) run() error {
	for {
		action, err := l.prompter.SelectValue("What next?", sessionMenu)
		if err != nil {
			if errors.Is(err, interaction.ErrAborted) {
				return nil
			}
			return err
		}
		if action == actionQuit || action == "" {
			return nil
		}
		if err := l.dispatch(action); err != nil {
			if errors.Is(err, interaction.ErrAborted) {
				continue
			}
			return err
		}
	}
}

func (l *sessionLoop) dispatch(action string) error {
	var err error
	switch action {
	case actionAddEnvironment:
		err = l.addEnvironment()
	case actionRemoveEnvironment:
		err = l.removeEnvironment()
	case actionAddProject:
		err = l.addProject()
	case actionRemoveProject:
		err = l.removeProject()
	case actionSetLink:
		err = l.setLink()
	case actionPipeline:
		return l.pipelineActions()
	case actionShow:
		l.render()
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		if isRegistryError(err) {
			l.console.Warn(err.Error())
			return nil
		}
		return err
	}
	l.render()
	return nil
}

func (l *sessionLoop) addEnvironment() error {
	input, err := l.prompter.EnvironmentForm(stackNames(), l.stack)
	if err != nil {
		return err
	}
	stack, err := registry.ParseStack(input.Stack)
	if err != nil {
		return err
	}
	record, err := l.session.AddEnvironment(input.Name, stack, input.Branch)
	if err != nil {
		return err
	}
	l.logger.Debug("environment added",
		zap.String("name", record.Name),
		zap.String("stack", record.Stack.String()),
		zap.String("branch", record.Branch))
	l.console.Success(fmt.Sprintf("Added environment '%s'", record.Name))
	return nil
}

func (l *sessionLoop) removeEnvironment() error {
	names := l.session.EnvironmentNames()
	if len(names) == 0 {
		l.console.Warn("No environments to delete")
		return nil
	}
	name, err := l.prompter.Select("Env Name", names)
	if err != nil {
		return err
	}
	affected := len(l.session.Projects())
	if affected > 0 {
		ok, err := l.prompter.Confirm(fmt.Sprintf("Delete environment '%s' and its links from %d project(s)?", name, affected))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := l.session.RemoveEnvironment(name); err != nil {
		return err
	}
	l.logger.Debug("environment removed", zap.String("name", name), zap.Int("projects", affected))
	l.console.Success(fmt.Sprintf("Removed environment '%s'", name))
	return nil
}

func (l *sessionLoop) addProject() error {
	envs := l.session.EnvironmentNames()
	if len(envs) == 0 {
		l.console.Warn("Add an environment before adding projects")
		return nil
	}
	input, err := l.prompter.ProjectForm(envs)
	if err != nil {
		return err
	}
	record, err := l.session.AddProject(input.Name, input.Links)
	if err != nil {
		return err
	}
	l.logger.Debug("project added", zap.String("name", record.Name), zap.Any("project_ids", record.ProjectIDs))
	l.console.Success(fmt.Sprintf("Added project '%s'", record.Name))
	return nil
}

func (l *sessionLoop) removeProject() error {
	names := l.session.ProjectNames()
	if len(names) == 0 {
		l.console.Warn("No projects to delete")
		return nil
	}
	name, err := l.prompter.Select("Project Name", names)
	if err != nil {
		return err
	}
	if err := l.session.RemoveProject(name); err != nil {
		return err
	}
	l.logger.Debug("project removed", zap.String("name", name))
	l.console.Success(fmt.Sprintf("Removed project '%s'", name))
	return nil
}

func (l *sessionLoop) setLink() error {
	projects := l.session.ProjectNames()
	if len(projects) == 0 {
		l.console.Warn("No projects yet")
		return nil
	}
	project, err := l.prompter.Select("Project Name", projects)
	if err != nil {
		return err
	}
	env, err := l.prompter.Select("Env Name", l.session.EnvironmentNames())
	if err != nil {
		return err
	}
	current, _ := l.session.Project(project)
	link, err := l.prompter.Input(fmt.Sprintf("Link (%s)", env), nonEmpty(current.Link(env)))
	if err != nil {
		return err
	}
	record, err := l.session.SetLink(project, env, link)
	if err != nil {
		return err
	}
	l.logger.Debug("link updated",
		zap.String("project", project),
		zap.String("environment", env),
		zap.String("project_id", record.ProjectID(env)))
	l.console.Success(fmt.Sprintf("Updated '%s' link for '%s'", project, env))
	return nil
}

func (l *sessionLoop) pipelineActions() error {
	choice, err := l.prompter.Select("SCM Platform", platformOptions(l.platform))
	if err != nil {
		return err
	}
	platform, err := pipeline.ParsePlatform(choice)
	if err != nil {
		l.console.Warn(err.Error())
		return nil
	}
	l.platform = platform
	summary, err := pipeline.Render(platform, l.session.Environments())
	if err != nil {
		return err
	}
	l.console.Section("🚀", "Pipeline Actions (Version Control Setup)")
	l.console.Block(summary)
	return nil
}

func (l *sessionLoop) render() {
	renderTables(l.console, l.session, l.tables)
}

// renderTables prints the environment table followed by the project table.
func renderTables(console *ui.Console, session *registry.Session, opts ui.TableOptions) {
	console.Section("🌍", "Setup Environments")
	console.Block(ui.RenderEnvironments(session.Environments()))
	console.Section("📦", "Project Mapping")
	console.Block(ui.RenderProjects(session.Projects(), session.EnvironmentNames(), opts))
}

func isRegistryError(err error) bool {
	return errors.Is(err, registry.ErrValidation) ||
		errors.Is(err, registry.ErrDuplicateName) ||
		errors.Is(err, registry.ErrNotFound)
}

func stackNames() []string {
	names := make([]string, len(registry.Stacks))
	for i, stack := range registry.Stacks {
		names[i] = stack.String()
	}
	return names
}

// platformOptions lists platforms with the current one first.
func platformOptions(current pipeline.Platform) []string {
	options := []string{string(current)}
	for _, name := range pipeline.PlatformNames() {
		if name != string(current) {
			options = append(options, name)
		}
	}
	return options
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
