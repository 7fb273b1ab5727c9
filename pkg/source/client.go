// Package source wraps the post-fetching API behind a narrow client interface.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/rategov"
)

// Bucket is the rate-governor bucket name for the source API.
const Bucket = "source"

// Client fetches posts for a monitored account.
type Client interface {
	// FetchSince returns up to limit posts for the account newer than
	// sinceID, newest first. An empty sinceID means "no watermark yet".
	FetchSince(ctx context.Context, account, sinceID string, limit int) ([]models.SourcePost, error)
}

// HTTPClient implements Client against the source's JSON API.
type HTTPClient struct {
	baseURL  string
	token    string
	hc       *http.Client
	governor *rategov.Governor
	logger   *slog.Logger
}

// NewHTTPClient creates a source API client. The governor is fed upstream
// quota headers; it may be nil in tests.
func NewHTTPClient(cfg *config.SourceConfig, governor *rategov.Governor) *HTTPClient {
	return &HTTPClient{
		baseURL:  cfg.BaseURL,
		token:    cfg.APIToken,
		hc:       &http.Client{Timeout: cfg.RequestTimeout},
		governor: governor,
		logger:   slog.Default().With("component", "source-client"),
	}
}

// fetchResponse is the wire shape of a successful fetch.
type fetchResponse struct {
	Posts []wirePost `json:"posts"`
}

type wirePost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Reshares  int       `json:"reshares"`
	Replies   int       `json:"replies"`
	Media     []struct {
		Kind string `json:"kind"`
		URL  string `json:"url"`
	} `json:"media"`
}

// FetchSince implements Client. Transient failures are retried with
// exponential backoff inside the caller's deadline; rate limits and
// rejections surface immediately as classified errors.
func (c *HTTPClient) FetchSince(ctx context.Context, account, sinceID string, limit int) ([]models.SourcePost, error) {
	u, err := url.Parse(fmt.Sprintf("%s/accounts/%s/posts", c.baseURL, url.PathEscape(account)))
	if err != nil {
		return nil, models.NewKindError(models.KindInternalFatal, err)
	}
	q := u.Query()
	if sinceID != "" {
		q.Set("since_id", sinceID)
	}
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var posts []models.SourcePost
	operation := func() error {
		posts, err = c.fetchOnce(ctx, u.String(), account)
		if err != nil && !models.KindOf(err).Retryable() {
			return backoff.Permanent(err)
		}
		if models.KindOf(err) == models.KindUpstreamRateLimit {
			// The coordinator handles rate limits with adaptive spacing;
			// retrying here would fight the governor.
			return backoff.Permanent(err)
		}
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 500 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	expo.MaxElapsedTime = 0 // bounded by ctx

	if err := backoff.Retry(operation, backoff.WithContext(expo, ctx)); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) fetchOnce(ctx context.Context, rawURL, account string) ([]models.SourcePost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, models.NewKindError(models.KindInternalFatal, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, models.NewKindError(models.KindTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.observeQuota(resp.Header)

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, models.NewRateLimitError(
			fmt.Errorf("source rate limited for %s", account),
			retryAfterHeader(resp.Header),
		)
	case resp.StatusCode >= 500:
		return nil, models.NewKindError(models.KindTransientNetwork,
			fmt.Errorf("source returned %d for %s", resp.StatusCode, account))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("source returned %d for %s: %s", resp.StatusCode, account, body))
	}

	var decoded fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("malformed source response for %s: %w", account, err))
	}

	posts := make([]models.SourcePost, 0, len(decoded.Posts))
	for _, wp := range decoded.Posts {
		p := models.SourcePost{
			ID:        wp.ID,
			Account:   account,
			Text:      wp.Text,
			CreatedAt: wp.CreatedAt,
			Engagement: models.Engagement{
				Likes:    wp.Likes,
				Reshares: wp.Reshares,
				Replies:  wp.Replies,
			},
		}
		for _, m := range wp.Media {
			p.Media = append(p.Media, models.Media{
				Kind: models.MediaKind(m.Kind),
				URL:  m.URL,
			})
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// observeQuota feeds X-RateLimit headers into the adaptive governor bucket.
func (c *HTTPClient) observeQuota(h http.Header) {
	if c.governor == nil {
		return
	}
	remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if err != nil {
		return
	}
	resetUnix, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return
	}
	c.governor.Observe(Bucket, remaining, time.Unix(resetUnix, 0))
}

// retryAfterHeader parses a Retry-After value in seconds; zero if absent.
func retryAfterHeader(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
