// Package jsonextract recovers JSON objects from raw LLM response text.
// Models wrap their output in markdown fences or interleave it with prose,
// so extraction is best-effort with a fixed fallback order.
package jsonextract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// braceSpanRegex matches the broadest brace-delimited span in the text,
// including newlines. A single greedy match, never multiple narrower ones.
var braceSpanRegex = regexp.MustCompile(`(?s)\{.*\}`)

// Extract parses a JSON object out of raw LLM output text.
//
// The fallback order is fixed: strip any markdown code fences and attempt a
// strict parse; on failure, parse the broadest brace-delimited span of the
// original text; on failure, return an empty map. Extract never fails:
// unusable input degrades to an empty result for the caller to render as
// "no itinerary available".
func Extract(text string) map[string]any {
	candidate := stripFences(text)

	if obj, ok := parseObject(candidate); ok {
		return obj
	}

	if span := braceSpanRegex.FindString(text); span != "" {
		if obj, ok := parseObject(span); ok {
			return obj
		}
	}

	return map[string]any{}
}

// stripFences trims whitespace and removes a leading ```json or ``` fence
// marker and a trailing ``` fence marker when present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// parseObject attempts a strict JSON parse into an object.
func parseObject(text string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	if obj == nil {
		return nil, false
	}
	return obj, true
}
