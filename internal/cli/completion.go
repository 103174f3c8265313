package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a command-line flag for shell completion.
// Every generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long name without dashes (e.g. "algo")
	Short     string   // one-letter alias without dash (e.g. "q")
	Help      string   // description
	Values    []string // static suggestions; nil for boolean flags
	ValueName string   // value label in zsh (e.g. "duration")
	IsFile    bool     // completes file paths
	Dynamic   string   // "algo" or "type": values supplied at generation time
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "algo", Help: "Strategy to run", ValueName: "strategy", Dynamic: "algo"},
	{Long: "type", Help: "Numeric representation", ValueName: "type", Dynamic: "type"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "recursive-limit", Help: "Largest index of the recursive strategy", Values: []string{"30", "35", "40"}, ValueName: "limit"},
	{Long: "details", Short: "d", Help: "Show execution details"},
	{Long: "quiet", Short: "q", Help: "Print only the value"},
	{Long: "metrics", Help: "Print Prometheus metrics on exit"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "tui", Help: "Run the interactive dashboard"},
	{Long: "interactive", Help: "Start the interactive prompt"},
	{Long: "bench", Help: "Run the strategy benchmark"},
	{Long: "completion", Help: "Generate completion script", Values: completionShells, ValueName: "shell"},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateCompletion writes the completion script of shell to out.
// algorithms and types are the names accepted by -algo and -type; "all" is
// appended to the algorithms.
func GenerateCompletion(out io.Writer, shell string, algorithms, types []string) error {
	dyn := map[string][]string{
		"algo": append(append([]string(nil), algorithms...), "all"),
		"type": types,
	}
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(dyn)
	case "zsh":
		script = zshCompletion(dyn)
	case "fish":
		script = fishCompletion(dyn)
	case "powershell", "ps":
		script = powerShellCompletion(dyn)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(completionShells, ", "))
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// values returns the suggestions of f.
func (f FlagCompletion) values(dyn map[string][]string) []string {
	if f.Dynamic != "" {
		return dyn[f.Dynamic]
	}
	return f.Values
}

func (f FlagCompletion) names() []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(dyn map[string][]string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, f.names()...)
		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.values(dyn)) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.values(dyn), " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(f.names(), "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for fibmod
# Add this to your ~/.bashrc or ~/.bash_completion

_fibmod_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibmod_completions fibmod
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion(dyn map[string][]string) string {
	var args []string
	for _, f := range flagRegistry {
		suffix := ""
		switch {
		case f.IsFile:
			suffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.values(dyn)) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.values(dyn), " "))
		}
		if f.Short != "" {
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
				f.Short, f.Long, f.Short, f.Long, f.Help, suffix))
			continue
		}
		args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, suffix))
	}
	args = append(args, "        '1:index n:'", "        '2:modulus m:'")

	return fmt.Sprintf(`#compdef fibmod

# Zsh completion script for fibmod
# Add this to your ~/.zshrc or place in $fpath

_fibmod() {
    _arguments -s \
%s
}

_fibmod "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion(dyn map[string][]string) string {
	lines := []string{
		"# Fish completion script for fibmod",
		"# Add this to ~/.config/fish/completions/fibmod.fish",
		"",
		"complete -c fibmod -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c fibmod"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.values(dyn)) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.values(dyn), " ")))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(dyn map[string][]string) string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range f.names() {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		vals := f.values(dyn)
		if f.IsFile || len(vals) == 0 {
			continue
		}
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = "'" + v + "'"
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	return fmt.Sprintf(`# PowerShell completion script for fibmod
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'fibmod' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
