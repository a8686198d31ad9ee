// Where: cli/internal/pipeline/pipeline.go
// What: Placeholder pipeline actions for the chosen SCM platform.
// Why: Show what a pipeline setup would cover without calling any SCM API.
package pipeline

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/lifecycle-manager/cli/internal/registry"
)

// Platform is a source-control hosting platform.
type Platform string

const (
	GitHub    Platform = "GitHub"
	GitLab    Platform = "GitLab"
	Bitbucket Platform = "Bitbucket"
)

// Platforms lists the selectable platforms in display order.
var Platforms = []Platform{GitHub, GitLab, Bitbucket}

// ParsePlatform resolves a platform name case-insensitively.
func ParsePlatform(value string) (Platform, error) {
	trimmed := strings.TrimSpace(value)
	for _, platform := range Platforms {
		if strings.EqualFold(trimmed, string(platform)) {
			return platform, nil
		}
	}
	return "", fmt.Errorf("unsupported SCM platform %q (want GitHub, GitLab or Bitbucket)", value)
}

// PlatformNames returns the platform names as plain strings.
func PlatformNames() []string {
	names := make([]string, len(Platforms))
	for i, platform := range Platforms {
		names[i] = string(platform)
	}
	return names
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	summaryOnce sync.Once
	summaryTmpl *template.Template
	summaryErr  error
)

type summaryData struct {
	Platform     string
	Environments []registry.EnvironmentRecord
	Names        []string
}

// Render describes the pipeline a platform would get for envs.
func Render(platform Platform, envs []registry.EnvironmentRecord) (string, error) {
	tmpl, err := loadSummary()
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(envs))
	for _, env := range envs {
		names = append(names, env.Name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summaryData{Platform: string(platform), Environments: envs, Names: names}); err != nil {
		return "", fmt.Errorf("render pipeline summary: %w", err)
	}
	return buf.String(), nil
}

func loadSummary() (*template.Template, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New("summary.txt.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/summary.txt.tmpl")
	})
	return summaryTmpl, summaryErr
}
