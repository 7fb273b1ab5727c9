package analyzer

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// PromptData is the substitution set available to prompt templates.
type PromptData struct {
	Text      string
	Author    string
	CreatedAt string
}

// RenderPrompt expands a prompt template with post data. Templates use
// Go template syntax: {{.Text}}, {{.Author}}, {{.CreatedAt}}.
func RenderPrompt(tmpl string, text, author string, createdAt time.Time) (string, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid prompt template: %w", err)
	}

	var sb strings.Builder
	err = t.Execute(&sb, PromptData{
		Text:      text,
		Author:    author,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("prompt template execution failed: %w", err)
	}
	return sb.String(), nil
}
