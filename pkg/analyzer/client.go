// Package analyzer wraps the LLM service behind a narrow interface.
// The HTTP implementation speaks the OpenAI-compatible chat-completions
// protocol, which every provider this system targets exposes.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/models"
)

// Bucket is the rate-governor bucket name for the LLM provider.
const Bucket = "analyzer"

// defaultCostPer1K is the assumed USD cost per 1000 tokens when the
// params snapshot carries no cost_per_1k_tokens override.
const defaultCostPer1K = 0.002

// Request is one analysis invocation. Prompt, model, and params come from
// the settings snapshot taken at claim time.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Params       map[string]interface{}
}

// Result is the LLM output plus accounting.
type Result struct {
	Text         string
	TokensUsed   int
	CostEstimate float64
	Elapsed      time.Duration
}

// Analyzer is the narrow interface the worker pool consumes.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*Result, error)
}

// HTTPClient implements Analyzer over an OpenAI-compatible endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	logger  *slog.Logger
}

// NewHTTPClient creates an analyzer client.
func NewHTTPClient(cfg *config.AnalysisConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		hc:      &http.Client{Timeout: cfg.Timeout},
		logger:  slog.Default().With("component", "analyzer-client"),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Analyze implements Analyzer. Transient failures retry with exponential
// backoff inside the caller's deadline; rate limits and model rejections
// surface immediately as classified errors.
func (c *HTTPClient) Analyze(ctx context.Context, req Request) (*Result, error) {
	if req.Model == "" {
		return nil, models.NewKindError(models.KindInternalFatal, fmt.Errorf("model is required"))
	}

	start := time.Now()

	var result *Result
	operation := func() error {
		var err error
		result, err = c.callOnce(ctx, req)
		if err != nil && !models.KindOf(err).Retryable() {
			return backoff.Permanent(err)
		}
		if models.KindOf(err) == models.KindUpstreamRateLimit {
			// Rate limits release the claim with retry_after; retrying
			// in place would burn the analyze timeout for nothing.
			return backoff.Permanent(err)
		}
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = time.Second
	expo.MaxInterval = 10 * time.Second
	expo.MaxElapsedTime = 0 // bounded by ctx

	if err := backoff.Retry(operation, backoff.WithContext(expo, ctx)); err != nil {
		return nil, err
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

func (c *HTTPClient) callOnce(ctx context.Context, req Request) (*Result, error) {
	payload := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}
	if t, ok := floatParam(req.Params, "temperature"); ok {
		payload.Temperature = &t
	}
	if m, ok := floatParam(req.Params, "max_tokens"); ok {
		n := int(m)
		payload.MaxTokens = &n
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, models.NewKindError(models.KindInternalFatal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, models.NewKindError(models.KindInternalFatal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, models.NewKindError(models.KindTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, models.NewRateLimitError(
			fmt.Errorf("analyzer rate limited"),
			retryAfterHeader(resp.Header),
		)
	case resp.StatusCode >= 500:
		return nil, models.NewKindError(models.KindTransientNetwork,
			fmt.Errorf("analyzer returned %d", resp.StatusCode))
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, snippet))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, models.NewKindError(models.KindTransientNetwork,
			fmt.Errorf("malformed analyzer response: %w", err))
	}
	if decoded.Error != nil {
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("analyzer error: %s", decoded.Error.Message))
	}
	if len(decoded.Choices) == 0 {
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("analyzer returned no choices"))
	}

	choice := decoded.Choices[0]
	if choice.FinishReason == "content_filter" {
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("analyzer refused the prompt (content_filter)"))
	}
	if choice.Message.Content == "" {
		return nil, models.NewKindError(models.KindUpstreamRejected,
			fmt.Errorf("analyzer returned empty output (finish_reason=%s)", choice.FinishReason))
	}

	tokens := decoded.Usage.TotalTokens
	costPer1K := defaultCostPer1K
	if v, ok := floatParam(req.Params, "cost_per_1k_tokens"); ok {
		costPer1K = v
	}

	return &Result{
		Text:         choice.Message.Content,
		TokensUsed:   tokens,
		CostEstimate: float64(tokens) / 1000 * costPer1K,
	}, nil
}

// floatParam reads a numeric parameter from the params snapshot. JSON
// numbers decode as float64; ints stored programmatically are accepted too.
func floatParam(params map[string]interface{}, key string) (float64, bool) {
	if params == nil {
		return 0, false
	}
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// retryAfterHeader parses a Retry-After value in seconds; zero if absent.
func retryAfterHeader(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
