// Package prompts provides the LLM prompt templates, embedded at compile
// time as keyed JSON.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var loadOnce = sync.OnceValues(func() (map[string]string, error) {
	data, err := promptFiles.ReadFile("scoring.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file: %w", err)
	}
	return prompts, nil
})

// Get retrieves a prompt template by key.
func Get(key string) (string, error) {
	prompts, err := loadOnce()
	if err != nil {
		return "", err
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
