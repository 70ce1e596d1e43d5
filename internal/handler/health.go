package handler

import (
	"context"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database and cache reachability.
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Pings the database and the cache
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled", Timestamp: time.Now().UTC()}
	status := fiber.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status, resp.Database = "degraded", "unreachable"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			// the site keeps serving from the database without redis
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Cache = "unreachable"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
	}
	return c.Status(status).JSON(resp)
}
