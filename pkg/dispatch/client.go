// Package dispatch delivers rendered messages to the chat platform.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/signalhouse/postwatch/pkg/models"
)

// Bucket is the rate-governor bucket name for outbound sends.
const Bucket = "dispatch"

// Dispatcher is the narrow interface the dispatch workers consume.
// Send errors carry a models.ErrorKind so the worker can pick the
// transient/permanent policy without knowing the platform.
type Dispatcher interface {
	Send(ctx context.Context, destination, text string) error
}

// SlackDispatcher implements Dispatcher over the Slack Web API.
type SlackDispatcher struct {
	api     *goslack.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewSlackDispatcher creates a Slack-backed dispatcher.
func NewSlackDispatcher(token string, timeout time.Duration) *SlackDispatcher {
	return &SlackDispatcher{
		api:     goslack.New(token),
		timeout: timeout,
		logger:  slog.Default().With("component", "slack-dispatcher"),
	}
}

// NewSlackDispatcherWithAPIURL targets a custom API URL, for tests
// against a mock server.
func NewSlackDispatcherWithAPIURL(token, apiURL string, timeout time.Duration) *SlackDispatcher {
	return &SlackDispatcher{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		timeout: timeout,
		logger:  slog.Default().With("component", "slack-dispatcher"),
	}
}

// Slack error strings that no amount of retrying will fix.
var permanentSlackErrors = map[string]bool{
	"invalid_auth":      true,
	"account_inactive":  true,
	"token_revoked":     true,
	"not_authed":        true,
	"channel_not_found": true,
	"not_in_channel":    true,
	"is_archived":       true,
	"msg_too_long":      true,
	"restricted_action": true,
}

// Send posts the text to the destination channel and classifies failures.
func (d *SlackDispatcher) Send(ctx context.Context, destination, text string) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	_, _, err := d.api.PostMessageContext(ctx, destination,
		goslack.MsgOptionText(text, false),
		goslack.MsgOptionDisableLinkUnfurl(),
	)
	if err == nil {
		return nil
	}

	var rle *goslack.RateLimitedError
	if errors.As(err, &rle) {
		return models.NewRateLimitError(
			fmt.Errorf("chat.postMessage rate limited: %w", err),
			rle.RetryAfter,
		)
	}

	if permanentSlackErrors[err.Error()] {
		return models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("chat.postMessage rejected: %w", err))
	}

	return models.NewKindError(models.KindTransientNetwork,
		fmt.Errorf("chat.postMessage failed: %w", err))
}
