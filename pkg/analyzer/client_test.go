package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/models"
)

func analyzerStub(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(&config.AnalysisConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func okResponse(content string, tokens int) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
		"usage": map[string]int{"total_tokens": tokens},
	})
	return string(body)
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotReq chatRequest
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(okResponse("the verdict", 500)))
	})

	res, err := c.Analyze(context.Background(), Request{
		Model:        "gpt-4o-mini",
		SystemPrompt: "be brief",
		UserPrompt:   "analyze this",
		Params:       map[string]interface{}{"temperature": 0.2},
	})
	require.NoError(t, err)

	assert.Equal(t, "the verdict", res.Text)
	assert.Equal(t, 500, res.TokensUsed)
	assert.InDelta(t, 0.5*defaultCostPer1K, res.CostEstimate, 1e-9) // 500 tokens at the default rate
	assert.Greater(t, res.Elapsed, time.Duration(0))

	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	require.NotNil(t, gotReq.Temperature)
	assert.InDelta(t, 0.2, *gotReq.Temperature, 1e-9)
}

func TestAnalyzeCostOverride(t *testing.T) {
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okResponse("ok", 1000)))
	})

	res, err := c.Analyze(context.Background(), Request{
		Model:      "m",
		UserPrompt: "p",
		Params:     map[string]interface{}{"cost_per_1k_tokens": 0.01},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.01, res.CostEstimate, 1e-9)
}

func TestAnalyzeRequiresModel(t *testing.T) {
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not reach the server")
	})
	_, err := c.Analyze(context.Background(), Request{UserPrompt: "p"})
	require.Error(t, err)
	assert.Equal(t, models.KindInternalFatal, models.KindOf(err))
}

func TestAnalyzeRateLimited(t *testing.T) {
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Analyze(context.Background(), Request{Model: "m", UserPrompt: "p"})
	require.Error(t, err)
	assert.Equal(t, models.KindUpstreamRateLimit, models.KindOf(err))
	assert.Equal(t, 30*time.Second, models.RetryAfterOf(err))
}

func TestAnalyzeRejection(t *testing.T) {
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad request"}}`))
	})

	_, err := c.Analyze(context.Background(), Request{Model: "m", UserPrompt: "p"})
	require.Error(t, err)
	assert.Equal(t, models.KindUpstreamRejected, models.KindOf(err))
	assert.False(t, models.KindOf(err).Retryable())
}

func TestAnalyzeContentFilter(t *testing.T) {
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""},"finish_reason":"content_filter"}]}`))
	})

	_, err := c.Analyze(context.Background(), Request{Model: "m", UserPrompt: "p"})
	require.Error(t, err)
	assert.Equal(t, models.KindUpstreamRejected, models.KindOf(err))
}

func TestAnalyzeRetriesTransient(t *testing.T) {
	var calls atomic.Int32
	c := analyzerStub(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(okResponse("recovered", 10)))
	})

	res, err := c.Analyze(context.Background(), Request{Model: "m", UserPrompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", res.Text)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
