// Where: cli/internal/interaction/selector.go
// What: Interactive forms and selection helpers using the huh library.
// Why: Stand in for the add/delete dialogs of the environment and project tables.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runConfirmPrompt = func(title string, confirmed *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(confirmed).
		Run()
}

var runEnvironmentForm = func(stacks []string, input *EnvironmentInput) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Env Name").Value(&input.Name),
			huh.NewSelect[string]().Title("Stack").Options(huh.NewOptions(stacks...)...).Value(&input.Stack),
			huh.NewInput().Title("Branch").Value(&input.Branch),
		).Title("Add a new environment"),
	).Run()
}

var runProjectForm = func(envNames []string, input *ProjectInput) error {
	links := make([]string, len(envNames))
	fields := []huh.Field{huh.NewInput().Title("Project Name").Value(&input.Name)}
	for i, env := range envNames {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Link (%s)", env)).
			Placeholder("https://connection.keboola.com/admin/projects/<id>").
			Value(&links[i]))
	}
	if err := huh.NewForm(huh.NewGroup(fields...).Title("Add a new project")).Run(); err != nil {
		return err
	}
	input.Links = make(map[string]string, len(envNames))
	for i, env := range envNames {
		input.Links[env] = links[i]
	}
	return nil
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := runInputPrompt(title, suggestions, &input)
	if err != nil {
		return "", wrapPromptError("prompt input", err)
	}
	return input, nil
}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	var selected string
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", wrapPromptError("prompt select", err)
	}
	return selected, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", wrapPromptError("prompt select value", err)
	}
	return selected, nil
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	if err := runConfirmPrompt(title, &confirmed); err != nil {
		return false, wrapPromptError("prompt confirm", err)
	}
	return confirmed, nil
}

func (p HuhPrompter) EnvironmentForm(stacks []string, defaultStack string) (EnvironmentInput, error) {
	input := EnvironmentInput{Stack: defaultStack}
	if err := runEnvironmentForm(stacks, &input); err != nil {
		return EnvironmentInput{}, wrapPromptError("environment form", err)
	}
	return input, nil
}

func (p HuhPrompter) ProjectForm(envNames []string) (ProjectInput, error) {
	var input ProjectInput
	if err := runProjectForm(envNames, &input); err != nil {
		return ProjectInput{}, wrapPromptError("project form", err)
	}
	return input, nil
}

// wrapPromptError keeps user aborts distinguishable from terminal failures.
func wrapPromptError(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%s: %w", op, ErrAborted)
	}
	return fmt.Errorf("%s: %w", op, err)
}
