package surface

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// yamlEntry splits a block-style YAML line into the part that positions the
// value (indentation, sequence markers and an optional mapping key) and the
// value itself.
var yamlEntry = regexp.MustCompile(`^(\s*(?:- )*)((?:[^\s"'#][^:]*|"(?:[^"\\]|\\.)*"|'(?:[^']|'')*'):(?: |$))?`)

const minWrapWidth = 10

// wrapYAML folds long scalar values of an encoded YAML document to width.
// Continuation lines are indented to the value's column so the result still
// parses to the same data. Block scalars (| and >) are left untouched.
func wrapYAML(doc string, width int) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))
	blockIndent := -1

	for _, line := range lines {
		m := yamlEntry.FindStringSubmatch(line)
		nodeIndent := len(m[1])

		if blockIndent >= 0 {
			if strings.TrimSpace(line) == "" || leadingSpaces(line) > blockIndent {
				out = append(out, line)
				continue
			}
			blockIndent = -1
		}

		prefix := m[0]
		value := line[len(prefix):]
		if strings.HasPrefix(value, "|") || strings.HasPrefix(value, ">") {
			blockIndent = nodeIndent
			out = append(out, line)
			continue
		}
		if lipgloss.Width(line) <= width || value == "" {
			out = append(out, line)
			continue
		}

		hang := max(len(prefix), 2)
		wrapped := strings.Split(wrapWords(value, max(width-hang, minWrapWidth)), "\n")
		out = append(out, prefix+wrapped[0])
		if len(wrapped) > 1 {
			rest := indent.String(strings.Join(wrapped[1:], "\n"), uint(hang))
			out = append(out, strings.Split(rest, "\n")...)
		}
	}
	return strings.Join(out, "\n")
}

// wrapWords breaks s at spaces only. Hyphens are not break points because a
// folded line break reads back as a space.
func wrapWords(s string, limit int) string {
	w := wordwrap.NewWriter(limit)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(s))
	_ = w.Close()
	return w.String()
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
