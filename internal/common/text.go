package common

import "strings"

// Dedent strips the common leading whitespace of all non-empty lines from
// text. Lines that are empty or contain only whitespace do not contribute
// to the common indentation but are preserved (as empty lines) in the
// result.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	minIndent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := 0
		for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
			indent++
		}

		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return text
	}

	result := make([]string, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" || len(line) <= minIndent {
			result[i] = ""
		} else {
			result[i] = line[minIndent:]
		}
	}

	return strings.Join(result, "\n")
}
