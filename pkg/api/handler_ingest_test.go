package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/database"
	"github.com/signalhouse/postwatch/pkg/ingest"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/test/util"
)

// setupIngestServer wires a router over a real database so push handling is
// exercised end to end, middleware included.
func setupIngestServer(t *testing.T, secret string) (*gin.Engine, *services.AccountService, *ingest.Coordinator) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	accounts := services.NewAccountService(client)
	m := metrics.New()
	cfg := &config.Config{
		HTTPPort: "0",
		Source:   config.DefaultSourceConfig(),
		Push:     &config.PushConfig{SharedSecret: secret},
	}
	coord := ingest.NewCoordinator(cfg.Source, accounts, nil, m)

	srv := NewServer(cfg, database.NewClientFromEnt(client, db), accounts, nil, nil, coord, m, "test-pod")
	return srv.Router(), accounts, coord
}

func postSigned(r *gin.Engine, secret string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ingest/push", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(secret, body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPushMonitoredAccountAccepted(t *testing.T) {
	r, accounts, coord := setupIngestServer(t, testSecret)
	_, err := accounts.Create(context.Background(), "acme")
	require.NoError(t, err)

	w := postSigned(r, testSecret, []byte(`{"account":"acme","post_id":"42"}`))

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"queued"`)

	trig := <-coord.Triggers()
	assert.Equal(t, "acme", trig.Account)
	assert.Equal(t, "42", trig.HintPostID)
}

func TestPushUnmonitoredAccountForbidden(t *testing.T) {
	r, _, _ := setupIngestServer(t, testSecret)

	w := postSigned(r, testSecret, []byte(`{"account":"ghost"}`))

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account not monitored")
}

func TestPushBadSignatureUnauthorized(t *testing.T) {
	r, accounts, _ := setupIngestServer(t, testSecret)
	_, err := accounts.Create(context.Background(), "acme")
	require.NoError(t, err)

	w := postSigned(r, "wrong-secret", []byte(`{"account":"acme"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPushRejectedWhenIntakeDisabled(t *testing.T) {
	r, _, _ := setupIngestServer(t, "")

	w := postSigned(r, testSecret, []byte(`{"account":"acme"}`))

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "push intake disabled")
}

func TestHealthReportsUptime(t *testing.T) {
	r, _, _ := setupIngestServer(t, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uptime_s"`)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}
