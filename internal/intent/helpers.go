package intent

import (
	"regexp"
	"strings"
)

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON pulls a JSON object out of model output that may wrap it in
// commentary or a fenced code block. Tries a fenced block first, then a bare
// {...} span, then falls back to the trimmed text as-is.
func ExtractJSON(text string) string {
	if matches := fencedJSONRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}

	return strings.TrimSpace(text)
}
