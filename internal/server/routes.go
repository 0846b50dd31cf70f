package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"frictionless/internal/assistant"
	"frictionless/internal/db"
	"frictionless/internal/email"
	"frictionless/internal/handlers"
	"frictionless/internal/handlers/api"
	"frictionless/internal/middleware"
	"frictionless/internal/nav"
	"frictionless/internal/recent"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, registry nav.Registry, recentStore *recent.Store, assistantClient *assistant.Client) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	notifier := email.NewNotifier(s.Cfg)
	probeHandler := handlers.NewProbeHandler(database, registry)
	shareViewHandler := handlers.NewShareHandler(database, s.Cfg)

	queryHandler := api.NewQueryHandler(registry, recentStore)
	pagesHandler := api.NewPagesHandler(registry)
	recentHandler := api.NewRecentHandler(recentStore)
	taskHandler := api.NewTaskHandler(database)
	activityHandler := api.NewActivityHandler(database)
	teamHandler := api.NewTeamHandler(database)
	chatHandler := api.NewChatHandler(database, assistantClient)
	sharesHandler := api.NewShareHandler(database, s.Cfg, notifier)
	readinessHandler := api.NewReadinessHandler(database)

	// Auth routes - OIDC is always required for frontend access
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All users must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)
	s.App.Get("/login", authMiddleware.OptionalAuth, authHandler.LoginPage)

	// Query router and registry
	s.App.Post("/api/query", authMiddleware.RequireAuth, queryHandler.Query)
	s.App.Get("/api/pages", authMiddleware.RequireAuth, pagesHandler.List)
	s.App.Get("/api/recent", authMiddleware.RequireAuth, recentHandler.List)
	s.App.Delete("/api/recent", authMiddleware.RequireAuth, recentHandler.Clear)

	// Tasks and readiness
	s.App.Get("/api/tasks", authMiddleware.RequireAuth, taskHandler.List)
	s.App.Post("/api/tasks/:id/done", authMiddleware.RequireAuth, taskHandler.MarkDone)
	s.App.Get("/api/readiness", authMiddleware.RequireAuth, readinessHandler.Summary)

	// Activity feed and team
	s.App.Get("/api/activity", authMiddleware.RequireAuth, activityHandler.List)
	s.App.Get("/api/team", authMiddleware.RequireAuth, teamHandler.List)

	// Task assistant chat
	s.App.Get("/api/tasks/:id/chat", authMiddleware.RequireAuth, chatHandler.History)
	s.App.Post("/api/tasks/:id/chat", authMiddleware.RequireAuth, chatHandler.Send)

	// Share links
	s.App.Post("/api/shares", authMiddleware.RequireAuth, sharesHandler.Create)
	s.App.Get("/api/shares", authMiddleware.RequireAuth, sharesHandler.List)
	s.App.Delete("/api/shares/:id", authMiddleware.RequireAuth, sharesHandler.Revoke)

	// Public shared view
	s.App.Get("/s/:token", shareViewHandler.View)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
