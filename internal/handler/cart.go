package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/cart"
	"github.com/harvesthub/storefront/internal/domain/catalog"
	"github.com/harvesthub/storefront/internal/domain/pricing"
)

// SessionHeader identifies the shopper's cart session. Clients that omit it
// get a fresh session ID minted for them; the header is always echoed back.
const SessionHeader = "X-Session-ID"

func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(SessionHeader, id)
	return id
}

type cartItemResponse struct {
	Product   productResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartResponse struct {
	SessionID string             `json:"sessionId"`
	Items     []cartItemResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Shipping  decimal.Decimal    `json:"shipping"`
	Total     decimal.Decimal    `json:"total"`
}

// toCartResponse renders the cart with the preview price breakdown the cart
// page shows. The final bill is computed separately at checkout.
func toCartResponse(sid string, c *cart.Cart) cartResponse {
	lines := c.Lines()
	items := make([]cartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, cartItemResponse{
			Product:   toProductResponse(l.Product),
			Quantity:  l.Quantity,
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	bd, _ := pricing.Compute(c.Subtotal(), pricing.RulesetPreview)
	return cartResponse{
		SessionID: sid,
		Items:     items,
		ItemCount: c.ItemCount(),
		Subtotal:  bd.Subtotal,
		Tax:       bd.Tax,
		Shipping:  bd.Shipping,
		Total:     bd.Total,
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	c, err := h.carts.Get(r.Context(), sid)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(sid, c))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(w, r, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	}

	p, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	c, err := h.carts.AddItem(r.Context(), sid, *p, req.Quantity)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(sid, c))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req updateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), sid, r.PathValue("id"), req.Quantity)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(sid, c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	c, err := h.carts.RemoveItem(r.Context(), sid, r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(sid, c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	if err := h.carts.Clear(r.Context(), sid); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(sid, cart.New(nil)))
}
