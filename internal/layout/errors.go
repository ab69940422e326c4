package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout loading surfaces two structured error shapes: syntax errors
// from the KDL parser and deserialization errors from the tree walker.
// Both render to a single pre-formatted string before they leave this
// package; callers only ever see the error interface.

type syntaxError struct {
	sourceName string
	source     string
	cause      error
}

func (e *syntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "failed to parse layout %s: %v", e.sourceName, e.cause)
	if line, ok := errorLine(e.cause.Error()); ok {
		if snippet, ok := sourceLine(e.source, line); ok {
			fmt.Fprintf(&sb, "\n%4d | %s", line, snippet)
		}
	}
	return sb.String()
}

// errorLine pulls a "line N" reference out of a parser message so the
// offending source line can be echoed back.
func errorLine(msg string) (int, bool) {
	lower := strings.ToLower(msg)
	idx := strings.Index(lower, "line ")
	if idx < 0 {
		return 0, false
	}
	rest := lower[idx+len("line "):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func sourceLine(source string, line int) (string, bool) {
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

type deserializeError struct {
	sourceName string
	message    string
}

func (e *deserializeError) Error() string {
	help := deserializeHelp(e.message)
	if help == "" {
		return fmt.Sprintf("failed to deserialize layout %s: %s", e.sourceName, e.message)
	}
	return fmt.Sprintf("failed to deserialize layout %s: %s\n%s", e.sourceName, e.message, help)
}

// deserializeHelp maps a small set of known common mistakes to targeted
// help text; anything else gets no extra help.
func deserializeHelp(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "terminator"),
		strings.Contains(lower, "unterminated"),
		strings.Contains(lower, "unexpected"):
		return strings.Join([]string{
			"Possible reasons:",
			"- Missing `;` after a node name, eg. { node; another_node; }",
			"- Missing quotations (\") around an argument node eg. { first_node \"argument_node\"; }",
			"- Missing an equal sign (=) between node arguments on a title line. eg. argument=\"value\"",
			"- Found an extraneous equal sign (=) between node child arguments and their values. eg. { argument=\"value\" }",
		}, "\n")
	default:
		return ""
	}
}

func newDeserializeError(sourceName, format string, args ...any) error {
	return &deserializeError{
		sourceName: sourceName,
		message:    fmt.Sprintf(format, args...),
	}
}
