package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signalhouse/postwatch/pkg/metrics"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw request body.
const signatureHeader = "X-Signature"

// rawBodyKey is the context key the middleware stores the body under.
const rawBodyKey = "rawBody"

// maxPushBody bounds push payloads; anything bigger is junk.
const maxPushBody = 64 * 1024

// verifySignature authenticates push requests. The body is read here and
// stashed in the context so the handler doesn't read it twice.
func verifySignature(secret string, m *metrics.Metrics) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		sig := c.GetHeader(signatureHeader)
		if sig == "" {
			m.PushAuthFailures.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing signature"})
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPushBody+1))
		if err != nil || len(body) > maxPushBody {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable or oversized body"})
			return
		}

		mac := hmac.New(sha256.New, key)
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		// A bad signature is an authentication failure, same as a missing
		// one; 403 is reserved for pushes naming an unmonitored account.
		if !hmac.Equal([]byte(expected), []byte(sig)) {
			m.PushAuthFailures.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "signature mismatch"})
			return
		}

		c.Set(rawBodyKey, body)
		c.Next()
	}
}
