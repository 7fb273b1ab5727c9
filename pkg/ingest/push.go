package ingest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/signalhouse/postwatch/pkg/services"
)

// PushPayload is the body of a push notification. Providers differ in which
// fields they populate, so username extraction tries several in order.
type PushPayload struct {
	Account   string `json:"account,omitempty"`
	PostID    string `json:"post_id,omitempty"`
	Link      string `json:"link,omitempty"`
	Title     string `json:"title,omitempty"`
	FeedTitle string `json:"feed_title,omitempty"`
}

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_]{1,64})\b`)

// ParsePush decodes a push body and resolves the target account username.
// Resolution order: explicit account field, the link's path, an @-mention
// in the title, an @-mention in the feed title (the "Name - @user" form).
func ParsePush(body []byte) (account, hintPostID string, err error) {
	var p PushPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return "", "", fmt.Errorf("malformed push payload: %w", err)
	}

	account = p.username()
	if account == "" {
		return "", "", fmt.Errorf("push payload names no account")
	}

	hintPostID = p.PostID
	if hintPostID == "" {
		hintPostID = postIDFromLink(p.Link)
	}
	return account, hintPostID, nil
}

func (p PushPayload) username() string {
	if p.Account != "" {
		return services.Normalize(p.Account)
	}
	if u := usernameFromLink(p.Link); u != "" {
		return u
	}
	if m := mentionPattern.FindStringSubmatch(p.Title); m != nil {
		return services.Normalize(m[1])
	}
	if m := mentionPattern.FindStringSubmatch(p.FeedTitle); m != nil {
		return services.Normalize(m[1])
	}
	return ""
}

// usernameFromLink handles the two common permalink shapes:
// https://host/{user}/status/{id} and https://host/@{user}.
func usernameFromLink(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) == 0 || segs[0] == "" {
		return ""
	}
	first := strings.TrimPrefix(segs[0], "@")
	if len(segs) >= 2 && segs[1] != "status" && !strings.HasPrefix(segs[0], "@") {
		// Not a recognized permalink shape; don't guess.
		return ""
	}
	return services.Normalize(first)
}

func postIDFromLink(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segs {
		if s == "status" && i+1 < len(segs) {
			return segs[i+1]
		}
	}
	return ""
}
