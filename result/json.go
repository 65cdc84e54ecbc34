/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package result parses structured payloads out of raw model text.
// Models asked for "only the JSON object" still wrap it in markdown
// fences or stray prose often enough that every caller needs the same
// cleanup.
package result

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON returns the JSON content of a model response. It prefers
// a fenced ```json block; failing that it strips inline fences and
// surrounding whitespace and returns what remains.
func ExtractJSON(text string) string {
	if body, ok := fencedBlock(text, "```json"); ok {
		return body
	}
	if body, ok := fencedBlock(text, "```"); ok {
		return body
	}

	text = strings.TrimSpace(text)
	// Inline fences: the whole response on one conceptual line.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// fencedBlock finds a block opened by marker on its own line and
// closed by ``` on its own line, returning its trimmed body.
func fencedBlock(text, marker string) (string, bool) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "```" {
			return strings.TrimSpace(strings.Join(lines[start:i], "\n")), true
		}
	}
	return "", false
}

// Extract parses the JSON content of a model response into T.
func Extract[T any](text string) (T, error) {
	var out T
	content := ExtractJSON(text)
	if content == "" {
		return out, fmt.Errorf("response contains no JSON content")
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return out, fmt.Errorf("parsing model response as JSON: %w", err)
	}
	return out, nil
}
