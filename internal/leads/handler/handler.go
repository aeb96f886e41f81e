package handler

import (
	"github.com/gin-gonic/gin"

	"leadcall_backend/internal/leads/service"
	"leadcall_backend/internal/leads/transport"
	"leadcall_backend/platform/apperr"
	"leadcall_backend/platform/httpkit"
	"leadcall_backend/platform/validator"
)

// Handler handles HTTP requests for the lead operations.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// bindLeads decodes and validates a JSON array of lead records. Malformed
// structure is the one hard error class; everything past this point is a
// data outcome.
func (h *Handler) bindLeads(c *gin.Context) ([]transport.LeadRequest, bool) {
	var leads []transport.LeadRequest
	if err := c.ShouldBindJSON(&leads); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err))
		return nil, false
	}
	for i := range leads {
		if err := h.val.Struct(leads[i]); err != nil {
			httpkit.HandleError(c, apperr.NewWithDetails(apperr.KindValidation, msgValidationFailed, gin.H{"index": i}))
			return nil, false
		}
	}
	return leads, true
}

// Raw returns per-lead normalization and zone resolution, unscored.
// POST /api/v1/leads/raw
func (h *Handler) Raw(c *gin.Context) {
	leads, ok := h.bindLeads(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.ResolveRaw(c.Request.Context(), leads))
}

// List returns per-lead callability and priority, sorted by score.
// POST /api/v1/leads/list
func (h *Handler) List(c *gin.Context) {
	leads, ok := h.bindLeads(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.ListScheduled(c.Request.Context(), leads))
}

// NextToCall returns the single best lead to call next.
// POST /api/v1/leads/next-to-call
func (h *Handler) NextToCall(c *gin.Context) {
	leads, ok := h.bindLeads(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.NextToCall(c.Request.Context(), leads))
}

// CallWindow returns the dispatcher window in one lead's local time.
// POST /api/v1/timezone
func (h *Handler) CallWindow(c *gin.Context) {
	var req transport.CallWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.New(apperr.KindValidation, msgValidationFailed))
		return
	}
	httpkit.OK(c, h.svc.CallWindow(req))
}

// CallWindowBatch returns the dispatcher window for a batch of leads.
// POST /api/v1/leads/call-window/batch
func (h *Handler) CallWindowBatch(c *gin.Context) {
	var reqs []transport.CallWindowRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err))
		return
	}
	for i := range reqs {
		if err := h.val.Struct(reqs[i]); err != nil {
			httpkit.HandleError(c, apperr.NewWithDetails(apperr.KindValidation, msgValidationFailed, gin.H{"index": i}))
			return
		}
	}
	httpkit.OK(c, h.svc.CallWindowBatch(reqs))
}
