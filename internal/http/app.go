package http

import (
	"leadcall_backend/platform/config"
	"leadcall_backend/platform/logger"
)

// App holds the fully initialized application dependencies. It is populated
// by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP server settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
