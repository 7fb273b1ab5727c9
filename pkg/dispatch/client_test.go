package dispatch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/models"
)

func slackStub(t *testing.T, handler http.HandlerFunc) *SlackDispatcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSlackDispatcherWithAPIURL("xoxb-test", srv.URL+"/", 5*time.Second)
}

func TestSendOK(t *testing.T) {
	d := slackStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1.23"}`))
	})

	err := d.Send(context.Background(), "C123", "hello")
	require.NoError(t, err)
}

func TestSendPermanentError(t *testing.T) {
	d := slackStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	})

	err := d.Send(context.Background(), "C404", "hello")
	require.Error(t, err)
	assert.Equal(t, models.KindUpstreamRejected, models.KindOf(err))
	assert.False(t, models.KindOf(err).Retryable())
}

func TestSendTransientError(t *testing.T) {
	d := slackStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"fatal_error"}`))
	})

	err := d.Send(context.Background(), "C123", "hello")
	require.Error(t, err)
	assert.Equal(t, models.KindTransientNetwork, models.KindOf(err))
	assert.True(t, models.KindOf(err).Retryable())
}

func TestSendRateLimited(t *testing.T) {
	d := slackStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := d.Send(context.Background(), "C123", "hello")
	require.Error(t, err)
	assert.Equal(t, models.KindUpstreamRateLimit, models.KindOf(err))
	assert.Equal(t, 7*time.Second, models.RetryAfterOf(err))
}
