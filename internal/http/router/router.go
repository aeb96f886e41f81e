// Package router assembles the gin engine from the application's modules.
package router

import (
	"net/http"

	apphttp "leadcall_backend/internal/http"
	"leadcall_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the engine: shared middleware, the health endpoint, and the
// routes of every registered module.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app)))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	ctx := &apphttp.RouterContext{Engine: engine, V1: v1}
	for _, m := range app.Modules {
		m.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", m.Name())
	}

	return engine
}

func corsConfig(app *apphttp.App) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Request-ID")

	if app.Config.GetCORSAllowAll() {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = app.Config.GetCORSOrigins()
	cfg.AllowCredentials = app.Config.GetCORSAllowCreds()
	return cfg
}
