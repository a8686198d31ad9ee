// Where: cli/internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for commands, platforms, and scenario files.
package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/lifecycle-manager/cli/internal/meta"
	"github.com/poruru/lifecycle-manager/cli/internal/pipeline"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
}

type CompletionBashCmd struct{}

func runCompletionBash(cli CLI, out io.Writer) int {
	parser, err := kong.New(&cli, kong.Name(meta.AppName))
	if err != nil {
		return exitWithError(out, err)
	}

	var commands []string
	subcommands := make(map[string][]string)
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
		for _, sub := range node.Children {
			if sub.Type == kong.CommandNode && !sub.Hidden {
				subcommands[node.Name] = append(subcommands[node.Name], sub.Name)
			}
		}
	}

	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)

	var caseParts []string
	for _, cmd := range names {
		caseParts = append(caseParts, fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subcommands[cmd], " ")))
	}

	fn := "_" + meta.AppName + "_completion"
	script := fmt.Sprintf(`%[1]s() {
    local cur prev cmd
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd="${COMP_WORDS[1]}"

    case "${prev}" in
        --platform)
            COMPREPLY=( $(compgen -W "%[2]s" -- "${cur}") )
            return 0
            ;;
        --script|--env-file)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%[3]s" -- "${cur}") )
        return 0
    fi

    case "${cmd}" in
        run|validate)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
%[4]s
    esac
}
complete -F %[1]s %[5]s
`, fn, strings.Join(pipeline.PlatformNames(), " "), strings.Join(commands, " "), strings.Join(caseParts, "\n"), meta.AppName)

	fmt.Fprint(out, script)
	return 0
}
