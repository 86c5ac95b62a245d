package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/pingui001/Crud-y-DB/internal/model"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
)

type TransactionService interface {
	Create(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error)
	List(ctx context.Context) ([]*model.Transaction, error)
	Get(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, id int64, u model.TransactionUpdate) error
	Delete(ctx context.Context, id int64) error
}

type TransactionHandler struct {
	svc TransactionService
}

func RegisterTransactionRoutes(r *router.Router, h *TransactionHandler) {
	r.POST("/transactions", h.Create)
	r.GET("/transactions", h.List)
	r.GET("/transactions/{id}", h.Get)
	r.PUT("/transactions/{id}", h.Update)
	r.DELETE("/transactions/{id}", h.Delete)
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{
		svc: svc,
	}
}

// date_and_time comes in as a string so clients are not forced into RFC3339.
type createTransactionRequest struct {
	CustomerID        int64  `json:"customer_id"`
	DateAndTime       string `json:"date_and_time"`
	TransactionAmount int64  `json:"transaction_amount"`
	TransactionStatus string `json:"transaction_status"`
	TransactionType   string `json:"transaction_type"`
}

type updateTransactionRequest struct {
	CustomerID        *int64  `json:"customer_id"`
	DateAndTime       *string `json:"date_and_time"`
	TransactionAmount *int64  `json:"transaction_amount"`
	TransactionStatus *string `json:"transaction_status"`
	TransactionType   *string `json:"transaction_type"`
}

func (h *TransactionHandler) Create(ctx *xhttp.RequestCtx) {
	var req createTransactionRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	p := model.TransactionCreateRequest{
		CustomerID:        req.CustomerID,
		TransactionAmount: req.TransactionAmount,
		TransactionStatus: req.TransactionStatus,
		TransactionType:   req.TransactionType,
	}
	if req.DateAndTime != "" {
		t, err := parseTime(req.DateAndTime)
		if err != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid date_and_time")
			return
		}
		p.DateAndTime = t
	}
	tr, err := h.svc.Create(ctx, p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, createdResponse{ID: tr.ID, Message: "transaction created successfully"})
}

func (h *TransactionHandler) List(ctx *xhttp.RequestCtx) {
	transactions, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}
	writeJSON(ctx, xhttp.StatusOK, transactions)
}

func (h *TransactionHandler) Get(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	tr, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, tr)
}

func (h *TransactionHandler) Update(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	var req updateTransactionRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	u := model.TransactionUpdate{
		CustomerID:        req.CustomerID,
		TransactionAmount: req.TransactionAmount,
		TransactionStatus: req.TransactionStatus,
		TransactionType:   req.TransactionType,
	}
	if req.DateAndTime != nil {
		t, err := parseTime(*req.DateAndTime)
		if err != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid date_and_time")
			return
		}
		u.DateAndTime = &t
	}
	if err := h.svc.Update(ctx, id, u); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "transaction updated successfully"})
}

func (h *TransactionHandler) Delete(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "transaction deleted successfully"})
}
