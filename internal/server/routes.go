package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wellness/internal/handlers"
	"wellness/internal/handlers/api"
	"wellness/internal/metrics"
	"wellness/internal/middleware"
	"wellness/internal/responder"
)

// RegisterRoutes registers all application routes. gatherer backs /metrics.
func (s *Server) RegisterRoutes(r *responder.Responder, rec *metrics.Recorder, gatherer prometheus.Gatherer) {
	// Initialize handlers
	chatHandler := handlers.NewChatHandler(r, rec, s.Cfg)
	apiChatHandler := api.NewChatHandler(r, rec)

	// Frontend routes
	s.App.Get("/", chatHandler.Index)
	s.App.Post("/chat", middleware.NoStore, chatHandler.Send)

	// JSON API
	v1 := s.App.Group("/api/v1", middleware.NoStore)
	v1.Post("/chat", apiChatHandler.Chat)
	v1.Post("/classify", apiChatHandler.Classify)

	// Operations
	s.App.Get("/healthz", api.Health)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
