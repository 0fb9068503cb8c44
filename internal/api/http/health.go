package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded" // board serves, Redis broadcast is down

	RedisUp       = "up"
	RedisDown     = "down"
	RedisDisabled = "disabled"

	redisPingTimeout = time.Second
)

// HealthResponse describes the board process. The board lives in memory, so
// a Redis outage degrades the broadcast but never fails the check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Redis     string    `json:"redis"`
	Projects  int       `json:"projects"`
}

// Counter reports how many projects the board holds.
type Counter interface {
	Len() int
}

// HealthHandler serves /health and /healthz for the board.
type HealthHandler struct {
	serviceName string
	version     string
	redis       *redis.Client
	projects    Counter
}

// NewHealthHandler creates the health handler. rdb may be nil when Redis is
// not configured.
func NewHealthHandler(serviceName, version string, rdb *redis.Client, projects Counter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		redis:       rdb,
		projects:    projects,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	redisStatus := h.redisStatus(c.Request.Context())

	status := StatusHealthy
	if redisStatus == RedisDown {
		status = StatusDegraded
	}

	count := 0
	if h.projects != nil {
		count = h.projects.Len()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Redis:     redisStatus,
		Projects:  count,
	})
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return RedisDisabled
	}
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := h.redis.Ping(pingCtx).Err(); err != nil {
		return RedisDown
	}
	return RedisUp
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
