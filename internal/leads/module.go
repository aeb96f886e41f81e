// Package leads provides the lead timezone and call prioritization bounded
// context module.
package leads

import (
	apphttp "leadcall_backend/internal/http"
	"leadcall_backend/internal/leads/handler"
	"leadcall_backend/internal/leads/service"
	"leadcall_backend/platform/logger"
	"leadcall_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with its dependencies.
func NewModule(val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use (the offline CLI).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.V1.Group("/leads")
	leadsGroup.POST("/raw", m.handler.Raw)
	leadsGroup.POST("/list", m.handler.List)
	leadsGroup.POST("/next-to-call", m.handler.NextToCall)
	leadsGroup.POST("/call-window/batch", m.handler.CallWindowBatch)

	ctx.V1.POST("/timezone", m.handler.CallWindow)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
