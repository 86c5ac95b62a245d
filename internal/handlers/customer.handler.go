package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/pingui001/Crud-y-DB/internal/model"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
)

type CustomerService interface {
	Create(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, id int64, u model.CustomerUpdate) error
	Delete(ctx context.Context, id int64) error
}

type CustomerHandler struct {
	svc CustomerService
}

func RegisterCustomerRoutes(r *router.Router, h *CustomerHandler) {
	r.POST("/customers", h.Create)
	r.GET("/customers", h.List)
	r.GET("/customers/{id}", h.Get)
	r.PUT("/customers/{id}", h.Update)
	r.DELETE("/customers/{id}", h.Delete)
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: svc,
	}
}

type createCustomerRequest struct {
	IdentificationNumber int64  `json:"identification_number"`
	CustomerName         string `json:"customer_name"`
	Address              string `json:"address"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *CustomerHandler) Create(ctx *xhttp.RequestCtx) {
	var req createCustomerRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	p := model.CustomerCreateRequest{
		IdentificationNumber: req.IdentificationNumber,
		CustomerName:         req.CustomerName,
		Address:              req.Address,
		Phone:                req.Phone,
		Email:                req.Email,
	}
	c, err := h.svc.Create(ctx, p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, createdResponse{ID: c.ID, Message: "customer created successfully"})
}

func (h *CustomerHandler) List(ctx *xhttp.RequestCtx) {
	customers, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if customers == nil {
		customers = []*model.Customer{}
	}
	writeJSON(ctx, xhttp.StatusOK, customers)
}

func (h *CustomerHandler) Get(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, c)
}

func (h *CustomerHandler) Update(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	var u model.CustomerUpdate
	if err := readJSON(ctx, &u); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.svc.Update(ctx, id, u); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "customer updated successfully"})
}

func (h *CustomerHandler) Delete(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "customer deleted successfully"})
}
