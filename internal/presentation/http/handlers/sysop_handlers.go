package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/interfaces"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// SysOpHandlers serves health checks and runtime log level control.
type SysOpHandlers struct {
	cache       interfaces.DatasetCache
	perfTracker *performance.Tracker
	logger      *logging.ChanneledLogger
	started     time.Time
}

// NewSysOpHandlers creates system operation handlers.
func NewSysOpHandlers(cache interfaces.DatasetCache, perfTracker *performance.Tracker, logger *logging.ChanneledLogger) *SysOpHandlers {
	return &SysOpHandlers{
		cache:       cache,
		perfTracker: perfTracker,
		logger:      logger,
		started:     time.Now().UTC(),
	}
}

// HandleHealth serves GET /api/v1/health.
func (h *SysOpHandlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"uptimeSeconds": time.Since(h.started).Seconds(),
		"cache":         h.cache.Summary(),
		"performance":   h.perfTracker.GetSummary(),
	})
}

// GetLogLevels serves GET /api/v1/sysop/logs/levels.
func (h *SysOpHandlers) GetLogLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"levels": h.logger.GetChannelLevels()})
}

type logLevelRequest struct {
	Channel string `json:"channel" binding:"required"`
	Level   string `json:"level" binding:"required"`
}

// SetLogLevel serves POST /api/v1/sysop/logs/levels. Admin only.
func (h *SysOpHandlers) SetLogLevel(c *gin.Context) {
	var req logLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel and level are required"})
		return
	}

	level, err := parseLogLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.logger.SetChannelLevel(logging.Channel(req.Channel), level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"channel": req.Channel, "level": level.String()})
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch raw {
	case "DEBUG", "debug":
		return slog.LevelDebug, nil
	case "INFO", "info":
		return slog.LevelInfo, nil
	case "WARN", "warn":
		return slog.LevelWarn, nil
	case "ERROR", "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", raw)
}
