package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	codeFence     = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	jsonObject    = regexp.MustCompile(`\{[\s\S]*\}`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	singleQuoted  = regexp.MustCompile(`'([^']*)'`)
	lineComment   = regexp.MustCompile(`(?m)//.*?$`)
)

// extractJSON pulls a JSON object out of raw model output, tolerating the
// common quirks: markdown code fences, surrounding prose, trailing commas,
// single-quoted strings, and JS-style comments.
func extractJSON(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data, nil
	}

	if match := codeFence.FindStringSubmatch(text); match != nil {
		candidate := strings.TrimSpace(match[1])
		if err := json.Unmarshal([]byte(candidate), &data); err == nil {
			return data, nil
		}
		if err := json.Unmarshal([]byte(repairJSON(candidate)), &data); err == nil {
			return data, nil
		}
	}

	if candidate := jsonObject.FindString(text); candidate != "" {
		if err := json.Unmarshal([]byte(candidate), &data); err == nil {
			return data, nil
		}
		if err := json.Unmarshal([]byte(repairJSON(candidate)), &data); err == nil {
			return data, nil
		}
	}

	return nil, fmt.Errorf("no valid JSON object in model output")
}

// repairJSON fixes the malformations models produce most often. It operates
// textually and may corrupt exotic string contents; it only runs after strict
// parsing has already failed.
func repairJSON(text string) string {
	text = trailingComma.ReplaceAllString(text, "$1")
	text = singleQuoted.ReplaceAllString(text, `"$1"`)
	text = lineComment.ReplaceAllString(text, "")
	return text
}
