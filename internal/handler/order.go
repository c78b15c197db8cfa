package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/payment"
)

type checkoutRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

type orderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	CustomerName    string              `json:"customerName"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	Items           []orderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Shipping        decimal.Decimal     `json:"shipping"`
	Total           decimal.Decimal     `json:"total"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func toOrderResponse(o *checkout.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal,
		})
	}
	return orderResponse{
		ID:              o.ID,
		Number:          o.Number,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		Phone:           o.Phone,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		Items:           items,
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		Shipping:        o.Shipping,
		Total:           o.Total,
		Notes:           o.Notes,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

// placeOrder bills the session's cart and, on success, responds with the
// persisted order. Validation and payment failures map to 4xx so the shopper
// can correct the form and retry with the cart intact.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req checkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	o, err := h.checkout.PlaceOrder(r.Context(), sid, checkout.Request{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		PaymentMethod: payment.Method(req.PaymentMethod),
		Notes:         req.Notes,
	})
	if err != nil {
		var missing *checkout.MissingFieldError
		switch {
		case errors.As(err, &missing):
			writeError(w, r, http.StatusBadRequest, missing.Error())
		case errors.Is(err, payment.ErrUnknownMethod):
			writeError(w, r, http.StatusBadRequest, "unknown payment method")
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, r, http.StatusUnprocessableEntity, "cart is empty")
		case errors.Is(err, payment.ErrDeclined):
			writeError(w, r, http.StatusPaymentRequired, "payment declined")
		default:
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, toOrderResponse(o))
}
