package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signalhouse/postwatch/pkg/ingest"
	"github.com/signalhouse/postwatch/pkg/services"
)

// pushHandler handles POST /ingest/push. The signature middleware
// already authenticated the request and stashed the body.
func (s *Server) pushHandler(c *gin.Context) {
	// 1. Recover the verified body
	raw, ok := c.Get(rawBodyKey)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	body := raw.([]byte)

	// 2. Resolve the target account from the payload
	account, hintPostID, err := ingest.ParsePush(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// 3. Only monitored accounts accept pushes. An unknown account is a
	// producer pushing outside its remit, not a missing resource, so the
	// push path answers 403 where the admin API would answer 404.
	if _, err := s.accounts.Get(c.Request.Context(), account); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "account not monitored"})
			return
		}
		writeServiceError(c, err)
		return
	}

	// 4. Hand off to the coordinator; it coalesces and bounds the queue
	s.metrics.PushesReceived.Inc()
	coalesced, err := s.coord.SubmitPush(account, hintPostID)
	if err != nil {
		writeTriggerError(c, err)
		return
	}

	status := "queued"
	if coalesced {
		status = "coalesced"
	}
	c.JSON(http.StatusAccepted, PushResponse{Status: status, Account: account})
}

// forcePollHandler handles POST /ingest/poll/{username}/force, an operator
// poll that bypasses coalescing.
func (s *Server) forcePollHandler(c *gin.Context) {
	username := services.Normalize(c.Param("username"))

	if _, err := s.accounts.Get(c.Request.Context(), username); err != nil {
		writeServiceError(c, err)
		return
	}

	if err := s.coord.ForcePoll(username); err != nil {
		writeTriggerError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, PushResponse{Status: "queued", Account: username})
}

// pushDisabledHandler answers pushes when no shared secret is configured.
// The route stays registered so producers get an explicit rejection instead
// of a 404 that looks like a deployment mistake.
func (s *Server) pushDisabledHandler(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Error: "push intake disabled"})
}

func writeTriggerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrQueueSaturated):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "trigger queue saturated, retry later"})
	case errors.Is(err, ingest.ErrCoordinatorStopped):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "shutting down"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
