package handlers

import (
	"github.com/fasthttp/router"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
)

type HealthService interface {
	Get() error
}

type HealthHandler struct {
	svc HealthService
}

func RegisterHealthRoutes(r *router.Router, h *HealthHandler) {
	r.GET("/health", h.Get)
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{
		svc: svc,
	}
}

func (h *HealthHandler) Get(ctx *xhttp.RequestCtx) {
	if err := h.svc.Get(); err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "ok"})
}
