package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/harvesthub/storefront/internal/domain/bulkorder"
)

type bulkOrderRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	EventType    string    `json:"eventType"`
	Products     string    `json:"products"`
	Location     string    `json:"location"`
	DeliveryDate time.Time `json:"deliveryDate"`
	CODRequested bool      `json:"codRequested"`
}

type bulkOrderResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	EventType    string    `json:"eventType"`
	Products     string    `json:"products"`
	Location     string    `json:"location"`
	DeliveryDate time.Time `json:"deliveryDate"`
	CODRequested bool      `json:"codRequested"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toBulkOrderResponse(t bulkorder.Ticket) bulkOrderResponse {
	return bulkOrderResponse{
		ID:           t.ID,
		Name:         t.Name,
		Email:        t.Email,
		Phone:        t.Phone,
		EventType:    t.EventType,
		Products:     t.Products,
		Location:     t.Location,
		DeliveryDate: t.DeliveryDate,
		CODRequested: t.CODRequested,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
	}
}

func (h *Handler) submitBulkOrder(w http.ResponseWriter, r *http.Request) {
	var req bulkOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.bulk.Submit(r.Context(), bulkorder.Request{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		EventType:    req.EventType,
		Products:     req.Products,
		Location:     req.Location,
		DeliveryDate: req.DeliveryDate,
		CODRequested: req.CODRequested,
	})
	if err != nil {
		var missing *bulkorder.MissingFieldError
		switch {
		case errors.As(err, &missing):
			writeError(w, r, http.StatusBadRequest, missing.Error())
		case errors.Is(err, bulkorder.ErrDeliveryTooSoon):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, toBulkOrderResponse(*t))
}

func (h *Handler) adminListBulkOrders(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.bulkOrders.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]bulkOrderResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toBulkOrderResponse(t))
	}
	writeJSON(w, r, http.StatusOK, out)
}
