package ai

import (
	"regexp"
	"strings"
)

var (
	jsonFenceRegex = regexp.MustCompile("```json\\s*")
	fenceRegex     = regexp.MustCompile("```\\s*")
	objectRegex    = regexp.MustCompile(`(?s)\{.*\}`)
	arrayRegex     = regexp.MustCompile(`(?s)\[.*\]`)
)

func stripFences(text string) string {
	text = jsonFenceRegex.ReplaceAllString(text, "")
	return fenceRegex.ReplaceAllString(text, "")
}

// ExtractJSON returns the span from the first '{' to the last '}' of the unfenced text,
// or the whole unfenced text when there is no such span.
func ExtractJSON(text string) string {
	text = stripFences(text)
	if match := objectRegex.FindString(text); match != "" {
		return match
	}
	return text
}

// ExtractJSONArray is ExtractJSON for '[' ... ']'.
func ExtractJSONArray(text string) string {
	text = stripFences(text)
	if match := arrayRegex.FindString(text); match != "" {
		return match
	}
	return strings.TrimSpace(text)
}
