package dispatch

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/ent"
)

func TestTruncatePassesShortMessages(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello", Truncate("hello", 5), "message exactly at the cap passes unchanged")
	assert.Equal(t, "hello", Truncate("hello", 0), "non-positive cap disables truncation")
}

func TestTruncateMarksOverflow(t *testing.T) {
	got := Truncate("hello world", 8)
	assert.Equal(t, "hello w"+TruncationMarker, got)
	assert.Equal(t, 8, len([]rune(got)), "marker counts against the cap")
}

func TestTruncateIsRuneSafe(t *testing.T) {
	// Multi-byte runes must not be split mid-sequence.
	s := strings.Repeat("héllo🙂", 10)
	got := Truncate(s, 20)
	assert.Equal(t, 20, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
}

func TestTruncateTinyCap(t *testing.T) {
	assert.Equal(t, TruncationMarker, Truncate("hello", 1))
}

func testPost() *ent.Post {
	return &ent.Post{
		ID:              "1001",
		AccountUsername: "acme",
		Text:            "We shipped the thing.",
		CreatedAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Likes:           12,
		Reshares:        3,
		Replies:         4,
	}
}

func TestRenderMessagePlain(t *testing.T) {
	got := RenderMessage(MessageInput{
		Post:         testPost(),
		AnalysisText: "Summary: the thing shipped.",
		Cap:          4096,
	})

	require.Contains(t, got, "@acme")
	require.Contains(t, got, "We shipped the thing.")
	require.Contains(t, got, "Summary: the thing shipped.")
	require.Contains(t, got, "1001", "footer carries the post id")
	assert.NotContains(t, got, "*@acme*", "plain rendering carries no markup")
	assert.NotContains(t, got, "> ")
}

func TestRenderMessageMarkup(t *testing.T) {
	p := testPost()
	p.Text = "line one\nline two"
	got := RenderMessage(MessageInput{
		Post:         p,
		AnalysisText: "analysis",
		Markup:       true,
		Cap:          4096,
	})

	assert.Contains(t, got, "*@acme*")
	assert.Contains(t, got, "> line one\n> line two", "every quoted line gets the prefix")
}

func TestRenderMessageRespectsCap(t *testing.T) {
	p := testPost()
	p.Text = strings.Repeat("x", 10000)
	got := RenderMessage(MessageInput{Post: p, AnalysisText: "a", Cap: 100})

	assert.Equal(t, 100, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
}

func TestRenderMessageEmptyText(t *testing.T) {
	p := testPost()
	p.Text = ""
	got := RenderMessage(MessageInput{Post: p, AnalysisText: "analysis only", Cap: 4096})
	require.Contains(t, got, "analysis only")
	assert.NotContains(t, got, "\n\n\n")
}
