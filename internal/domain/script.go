package domain

import "strings"

const (
	codeFence = "```"
	// EmptyResponsePlaceholder replaces a blank completion so the operator still sees a script.
	EmptyResponsePlaceholder = DefaultShebang + "\n# Completion service returned an empty response"
)

// Script is a normalized, operator-reviewable shell script.
type Script string

// NormalizeScript turns a raw completion into a script:
// blank replies become a comment-only placeholder, a surrounding markdown
// fence (with or without a language tag) is removed, and a shebang is
// prepended when the text does not already start with one.
func NormalizeScript(raw string) Script {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Script(EmptyResponsePlaceholder)
	}

	if strings.HasPrefix(text, codeFence) {
		text = stripFence(text)
	}

	if !strings.HasPrefix(text, "#!") {
		text = DefaultShebang + "\n" + text
	}
	return Script(strings.TrimSpace(text))
}

// fenceLanguages are tags dropped from an opening fence even when a command
// follows on the same line.
var fenceLanguages = map[string]bool{
	"bash": true, "sh": true, "shell": true, "zsh": true, "console": true, "shellscript": true,
}

func stripFence(text string) string {
	first, rest, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(strings.TrimPrefix(first, codeFence))

	// A lone word is a language tag (```python); a known shell tag is dropped
	// even when a command shares its line (```bash mkdir -p x).
	if tag, tail, found := strings.Cut(first, " "); !found || fenceLanguages[strings.ToLower(tag)] {
		first = strings.TrimSpace(tail)
	}
	if first != "" {
		rest = first + "\n" + rest
	}

	rest = strings.TrimRightFunc(rest, isSpace)
	rest = strings.TrimSuffix(rest, codeFence)
	return strings.TrimSpace(rest)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// String implements fmt.Stringer.
func (s Script) String() string {
	return string(s)
}

// CommandLines returns the lines that are neither blank nor comments.
func (s Script) CommandLines() []string {
	var lines []string
	for _, line := range strings.Split(string(s), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// HasCommands reports whether anything would run if the script were executed.
func (s Script) HasCommands() bool {
	return len(s.CommandLines()) > 0
}

// FirstCommandLine is the first executable line, used to point at where a failure started.
func (s Script) FirstCommandLine() string {
	lines := s.CommandLines()
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[0])
}
