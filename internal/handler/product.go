package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/catalog"
)

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Organic     bool            `json:"organic"`
	Local       bool            `json:"local"`
	InSeason    bool            `json:"inSeason"`
	Featured    bool            `json:"featured"`
}

func toProductResponse(p catalog.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Unit:        p.Unit,
		Image:       p.Image,
		Description: p.Description,
		Organic:     p.Organic,
		Local:       p.Local,
		InSeason:    p.InSeason,
		Featured:    p.Featured,
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	f, ok := parseProductFilter(w, r)
	if !ok {
		return
	}

	products, err := h.products.List(r.Context(), f)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toProductResponse(*p))
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := catalog.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{
			ID:          string(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Image:       c.Image,
		})
	}
	writeJSON(w, r, http.StatusOK, out)
}

func parseProductFilter(w http.ResponseWriter, r *http.Request) (catalog.Filter, bool) {
	var f catalog.Filter
	q := r.URL.Query()

	if c := q.Get("category"); c != "" {
		cat := catalog.Category(c)
		if !cat.Valid() {
			writeError(w, r, http.StatusBadRequest, "unknown category: "+c)
			return f, false
		}
		f.Category = cat
	}
	f.Search = q.Get("search")

	for name, dst := range map[string]**bool{
		"organic":  &f.Organic,
		"local":    &f.Local,
		"inSeason": &f.InSeason,
		"featured": &f.Featured,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "invalid "+name+" value: "+v)
				return f, false
			}
			*dst = &b
		}
	}
	return f, true
}
