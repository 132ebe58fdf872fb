package handlers

import "github.com/gofiber/fiber/v3"

// ProbeHandler handles health probe endpoints.
type ProbeHandler struct{}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Liveness handles the /healthz endpoint. The app has no external
// dependencies, so liveness and readiness are the same check.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
