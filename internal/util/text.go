package util

import "strings"

// Dedent removes the longest whitespace prefix common to all non-blank
// lines of text. Blank lines are ignored when computing the margin and
// left blank in the output.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	if margin == "" {
		return text
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for i := 0; i < max; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:max]
}
