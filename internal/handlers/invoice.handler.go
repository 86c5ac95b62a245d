package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/pingui001/Crud-y-DB/internal/model"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
)

type InvoiceService interface {
	Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error)
	List(ctx context.Context) ([]*model.Invoice, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	Update(ctx context.Context, id int64, u model.InvoiceUpdate) error
	Delete(ctx context.Context, id int64) error
}

type InvoiceHandler struct {
	svc InvoiceService
}

func RegisterInvoiceRoutes(r *router.Router, h *InvoiceHandler) {
	r.POST("/invoices", h.Create)
	r.GET("/invoices", h.List)
	r.GET("/invoices/{id}", h.Get)
	r.PUT("/invoices/{id}", h.Update)
	r.DELETE("/invoices/{id}", h.Delete)
}

func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: svc,
	}
}

type createInvoiceRequest struct {
	PlatformUsed   string `json:"platform_used"`
	InvoiceNumber  string `json:"invoice_number"`
	TransactionID  int64  `json:"transaction_id"`
	InvoicePeriod  string `json:"invoice_period"`
	InvoicedAmount int64  `json:"invoiced_amount"`
	AmountPaid     int64  `json:"amount_paid"`
}

type updateInvoiceRequest struct {
	PlatformUsed   *string `json:"platform_used"`
	InvoiceNumber  *string `json:"invoice_number"`
	TransactionID  *int64  `json:"transaction_id"`
	InvoicePeriod  *string `json:"invoice_period"`
	InvoicedAmount *int64  `json:"invoiced_amount"`
	AmountPaid     *int64  `json:"amount_paid"`
}

func (h *InvoiceHandler) Create(ctx *xhttp.RequestCtx) {
	var req createInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	p := model.InvoiceCreateRequest{
		PlatformUsed:   req.PlatformUsed,
		InvoiceNumber:  req.InvoiceNumber,
		TransactionID:  req.TransactionID,
		InvoicedAmount: req.InvoicedAmount,
		AmountPaid:     req.AmountPaid,
	}
	if req.InvoicePeriod != "" {
		d, err := parseDate(req.InvoicePeriod)
		if err != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid invoice_period")
			return
		}
		p.InvoicePeriod = &d
	}
	inv, err := h.svc.Create(ctx, p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, createdResponse{ID: inv.ID, Message: "invoice created successfully"})
}

func (h *InvoiceHandler) List(ctx *xhttp.RequestCtx) {
	invoices, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if invoices == nil {
		invoices = []*model.Invoice{}
	}
	writeJSON(ctx, xhttp.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	inv, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *InvoiceHandler) Update(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	var req updateInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	u := model.InvoiceUpdate{
		PlatformUsed:   req.PlatformUsed,
		InvoiceNumber:  req.InvoiceNumber,
		TransactionID:  req.TransactionID,
		InvoicedAmount: req.InvoicedAmount,
		AmountPaid:     req.AmountPaid,
	}
	if req.InvoicePeriod != nil {
		d, err := parseDate(*req.InvoicePeriod)
		if err != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid invoice_period")
			return
		}
		u.InvoicePeriod = &d
	}
	if err := h.svc.Update(ctx, id, u); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "invoice updated successfully"})
}

func (h *InvoiceHandler) Delete(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "invoice deleted successfully"})
}
