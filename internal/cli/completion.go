package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes one flag for the completion generators.
type FlagCompletion struct {
	Long      string
	Short     string
	Help      string
	Values    []string
	ValueName string
	IsFile    bool
	// IsAlgo marks flags whose values are the registered algorithms.
	IsAlgo bool
	// Section groups flags under a comment in the fish script.
	Section string
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message", Section: "Help and version"},
	{Long: "version", Short: "V", Help: "Show version information", Section: "Help and version"},
	{Short: "a", Help: "First operand", ValueName: "decimal", Section: "Operands"},
	{Short: "b", Help: "Second operand", ValueName: "decimal", Section: "Operands"},
	{Long: "algo", Help: "Algorithms to run", IsAlgo: true, ValueName: "algorithm", Section: "Algorithms"},
	{Long: "order", Help: "Digit order for convolution", Values: []string{"desc", "asc"}, ValueName: "order", Section: "Algorithms"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m"}, ValueName: "duration", Section: "Algorithms"},
	{Short: "v", Help: "Display the full product", Section: "Output"},
	{Long: "details", Short: "d", Help: "Show timing details", Section: "Output"},
	{Long: "quiet", Short: "q", Help: "Print only the product", Section: "Output"},
	{Long: "json", Help: "Print a JSON report", Section: "Output"},
	{Long: "no-color", Help: "Disable colors", Section: "Output"},
	{Long: "output", Short: "o", Help: "Write the product to a file", IsFile: true, ValueName: "file", Section: "Output"},
	{Long: "interactive", Help: "Start the REPL", Section: "Modes"},
	{Long: "tui", Help: "Start the dashboard", Section: "Modes"},
	{Long: "config", Help: "TOML or YAML configuration file", IsFile: true, ValueName: "file", Section: "Modes"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "off"}, ValueName: "level", Section: "Modes"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell", Section: "Modes"},
}

// GenerateCompletion writes the completion script of shell to out.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	}
	return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
}

func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts, cases []string
	var filePatterns []string
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, flagNames(f)...)
		case f.IsAlgo:
			cases = append(cases, bashCase(flagNames(f), `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`))
		case len(f.Values) > 0:
			cases = append(cases, bashCase(flagNames(f),
				fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))))
		}
	}
	if len(filePatterns) > 0 {
		cases = append(cases, bashCase(filePatterns, `COMPREPLY=( $(compgen -f -- "${cur}") )`))
	}

	_, err := fmt.Fprintf(out, `# Bash completion script for decicalc
# Add this to your ~/.bashrc or ~/.bash_completion

_decicalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _decicalc_completions decicalc
`, strings.Join(opts, " "), strings.Join(algorithms, " "), strings.Join(cases, ""))
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func bashCase(patterns []string, body string) string {
	return fmt.Sprintf("        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(patterns, "|"), body)
}

func generateZshCompletion(out io.Writer, algorithms []string) error {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	_, err := fmt.Fprintf(out, `#compdef decicalc

# Zsh completion script for decicalc
# Place this file in a directory of your $fpath

_decicalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_decicalc "$@"
`, strings.Join(algorithms, " "), strings.Join(args, " \\\n"))
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

func zshArgEntry(f FlagCompletion) string {
	var value string
	switch {
	case f.IsFile:
		value = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		value = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		value = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		value = fmt.Sprintf(":%s:", f.ValueName)
	}

	switch {
	case f.Long != "" && f.Short != "":
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, value)
	case f.Long != "":
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, value)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, value)
}

func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for decicalc",
		"# Add this to ~/.config/fish/completions/decicalc.fish",
		"",
		"complete -c decicalc -f",
	}
	section := ""
	algoList := strings.Join(algorithms, " ")
	for _, f := range flagRegistry {
		if f.Section != section {
			section = f.Section
			lines = append(lines, "", "# "+section)
		}
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c decicalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
