package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/signalhouse/postwatch/pkg/database"
	"github.com/signalhouse/postwatch/pkg/version"
)

// healthHandler handles GET /health. Unreachable storage makes the whole
// process unhealthy; everything else is detail.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"pod_id":   s.podID,
		"version":  version.Full(),
		"uptime_s": int64(time.Since(s.started).Seconds()),
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if s.analysisPool != nil {
		body["analysis_pool"] = s.analysisPool.Health()
	}
	if s.dispatchPool != nil {
		body["dispatch_pool"] = s.dispatchPool.Health()
	}

	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "healthy"
	c.JSON(http.StatusOK, body)
}

// overviewHandler handles GET /api/v1/stats/overview.
func (s *Server) overviewHandler(c *gin.Context) {
	overview, err := s.stats.GetOverview(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	s.metrics.AnalysisQueueDepth.Set(float64(overview.AnalysisQueueDepth))
	s.metrics.DispatchQueueDepth.Set(float64(overview.DispatchQueueDepth))
	s.metrics.DailyCost.Set(overview.DailyCost)

	c.JSON(http.StatusOK, overview)
}
