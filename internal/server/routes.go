package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reprocheck/internal/audit"
	"reprocheck/internal/handlers"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *audit.Service) {
	auditHandler := handlers.NewAuditHandler(svc, s.Cfg)
	probeHandler := handlers.NewProbeHandler()

	s.App.Get("/", auditHandler.Index)
	s.App.Post("/analyze", auditHandler.Analyze)
	s.App.Post("/report", auditHandler.Download)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
