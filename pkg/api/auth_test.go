package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/metrics"
)

const testSecret = "push-secret"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func authTestRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/push", verifySignature(testSecret, m), func(c *gin.Context) {
		raw, _ := c.Get(rawBodyKey)
		c.JSON(http.StatusOK, gin.H{"len": len(raw.([]byte))})
	})
	return r
}

func TestVerifySignatureAccepts(t *testing.T) {
	r := authTestRouter(metrics.New())
	body := []byte(`{"account":"acme"}`)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(testSecret, body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"len":18`)
}

func TestVerifySignatureMissingHeader(t *testing.T) {
	r := authTestRouter(metrics.New())

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifySignatureMismatch(t *testing.T) {
	r := authTestRouter(metrics.New())
	body := []byte(`{"account":"acme"}`)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody("wrong-secret", body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifySignatureTamperedBody(t *testing.T) {
	r := authTestRouter(metrics.New())
	signed := signBody(testSecret, []byte(`{"account":"acme"}`))

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"account":"evil"}`)))
	req.Header.Set(signatureHeader, signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifySignatureOversizedBody(t *testing.T) {
	r := authTestRouter(metrics.New())
	body := bytes.Repeat([]byte("x"), maxPushBody+1)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(testSecret, body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
