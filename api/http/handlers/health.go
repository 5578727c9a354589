package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/atsmatch/api/http/presenter"
	"github.com/artem13815/atsmatch/pkg/health"
	"github.com/artem13815/atsmatch/pkg/logger"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// ReadyResponse — ответ readiness-пробы.
type ReadyResponse struct {
	Status string               `json:"status"`
	Checks []health.CheckResult `json:"checks"`
}

// Health: процесс жив.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready пингует хранилище анализов (memory-хранилище всегда готово).
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	checks, err := h.svc.Ready(ctx)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("readiness check failed")
		return presenter.JSON(c, http.StatusServiceUnavailable, ReadyResponse{Status: "not_ready", Checks: checks})
	}
	return presenter.JSON(c, http.StatusOK, ReadyResponse{Status: "ready", Checks: checks})
}
