package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/signalhouse/postwatch/pkg/services"
)

// listSettingsHandler handles GET /api/v1/settings, returning stored
// overrides only; unset keys fall back to defaults at claim time.
func (s *Server) listSettingsHandler(c *gin.Context) {
	rows, err := s.settings.All(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]SettingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, SettingResponse{Key: row.ID, Value: row.Value})
	}
	c.JSON(http.StatusOK, gin.H{"settings": out, "known_keys": services.KnownSettingKeys})
}

// putSettingHandler handles PUT /api/v1/settings/{key}. Only known keys are
// accepted; values are validated lazily at snapshot time so a bad value
// degrades to the default instead of wedging the workers.
func (s *Server) putSettingHandler(c *gin.Context) {
	key := c.Param("key")
	if !slices.Contains(services.KnownSettingKeys, key) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown setting key " + key})
		return
	}

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.settings.Set(c.Request.Context(), key, req.Value); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SettingResponse{Key: key, Value: req.Value})
}
