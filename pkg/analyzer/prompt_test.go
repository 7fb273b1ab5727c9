package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPromptSubstitution(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	got, err := RenderPrompt("Post by @{{.Author}} at {{.CreatedAt}}: {{.Text}}",
		"hello world", "acme", created)
	require.NoError(t, err)
	assert.Equal(t, "Post by @acme at 2026-03-14T09:30:00Z: hello world", got)
}

func TestRenderPromptNoPlaceholders(t *testing.T) {
	got, err := RenderPrompt("static prompt", "ignored", "ignored", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "static prompt", got)
}

func TestRenderPromptInvalidTemplate(t *testing.T) {
	_, err := RenderPrompt("{{.Text", "x", "y", time.Now())
	require.Error(t, err)
}

func TestRenderPromptUnknownField(t *testing.T) {
	_, err := RenderPrompt("{{.Nope}}", "x", "y", time.Now())
	require.Error(t, err)
}

func TestRenderPromptNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	got, err := RenderPrompt("{{.CreatedAt}}", "", "", time.Date(2026, 1, 1, 1, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T00:00:00Z", got)
}
