package dispatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/signalhouse/postwatch/ent"
)

// TruncationMarker terminates a message that exceeded the destination cap.
const TruncationMarker = "…"

// MessageInput is everything the renderer needs for one outbound message.
type MessageInput struct {
	Post         *ent.Post
	AnalysisText string
	Markup       bool // light mrkdwn when the destination supports it
	Cap          int  // destination message length limit, in runes
}

// RenderMessage combines the original post, the analysis output, and a
// metadata footer into one message, hard-truncated at the cap.
func RenderMessage(in MessageInput) string {
	var sb strings.Builder

	author := "@" + in.Post.AccountUsername
	when := in.Post.CreatedAt.UTC().Format(time.RFC1123)
	if in.Markup {
		sb.WriteString(fmt.Sprintf("*%s* — %s\n\n", author, when))
	} else {
		sb.WriteString(fmt.Sprintf("%s — %s\n\n", author, when))
	}

	if in.Post.Text != "" {
		if in.Markup {
			sb.WriteString("> " + strings.ReplaceAll(in.Post.Text, "\n", "\n> "))
			sb.WriteString("\n\n")
		} else {
			sb.WriteString(in.Post.Text)
			sb.WriteString("\n\n")
		}
	}

	if in.AnalysisText != "" {
		sb.WriteString(in.AnalysisText)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("♥ %d  ↻ %d  💬 %d  ·  %s",
		in.Post.Likes, in.Post.Reshares, in.Post.Replies, in.Post.ID))

	return Truncate(sb.String(), in.Cap)
}

// Truncate hard-truncates s to at most cap runes. A message exactly at the
// cap passes unchanged; anything longer ends with the truncation marker,
// marker included within the cap.
func Truncate(s string, cap int) string {
	if cap <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= cap {
		return s
	}
	marker := []rune(TruncationMarker)
	if cap <= len(marker) {
		return string(marker[:cap])
	}
	return string(runes[:cap-len(marker)]) + TruncationMarker
}
