package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/persistence"
)

// Pinger is any backing store that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	backend     string
	store       Pinger
	adapter     *persistence.Adapter
}

// NewHealthHandler returns a new handler instance. store may be nil when the
// adapter runs on the in-memory fallback only.
func NewHealthHandler(serviceName, version, backend string, store Pinger, adapter *persistence.Adapter) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, backend: backend, store: store, adapter: adapter}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the backing store. A degraded
// adapter is still ready; the roster keeps working from memory.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{"backend": h.backend}
	if h.adapter != nil && h.adapter.Degraded() {
		depStatus["storage"] = "degraded (in-memory fallback)"
	} else if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			depStatus["storage"] = err.Error()
		} else {
			depStatus["storage"] = "ok"
		}
	} else {
		depStatus["storage"] = "memory"
	}

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": depStatus,
	})
}
