//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestListProducts(t *testing.T) {
	resp := doGet(t, "/api/products")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	products := decodeJSON[[]productResponse](t, resp)
	if len(products) != 24 {
		t.Fatalf("expected 24 products, got %d", len(products))
	}
}

func TestListProducts_Fields(t *testing.T) {
	resp := doGet(t, "/api/products")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	products := decodeJSON[[]productResponse](t, resp)

	var apples *productResponse
	for i := range products {
		if products[i].ID == "apple-kashmir" {
			apples = &products[i]
			break
		}
	}

	if apples == nil {
		t.Fatal("product 'apple-kashmir' not found")
	}
	if apples.Name != "Kashmir Apples" {
		t.Errorf("name: got %q, want %q", apples.Name, "Kashmir Apples")
	}
	if apples.Price != "120" {
		t.Errorf("price: got %q, want %q", apples.Price, "120")
	}
	if apples.Category != "fruits" {
		t.Errorf("category: got %q, want %q", apples.Category, "fruits")
	}
	if apples.Unit != "kg" {
		t.Errorf("unit: got %q, want %q", apples.Unit, "kg")
	}
	if !apples.Organic {
		t.Error("organic: got false, want true")
	}
	if !apples.Local {
		t.Error("local: got false, want true")
	}
	if !apples.InSeason {
		t.Error("inSeason: got false, want true")
	}
	if !apples.Featured {
		t.Error("featured: got false, want true")
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	resp := doGet(t, "/api/products?category=fruits")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	products := decodeJSON[[]productResponse](t, resp)
	if len(products) == 0 {
		t.Fatal("expected at least one fruit product")
	}
	for _, p := range products {
		if p.Category != "fruits" {
			t.Errorf("product %s: category %q leaked through fruits filter", p.ID, p.Category)
		}
	}
}

func TestListProducts_UnknownCategory(t *testing.T) {
	resp := doGet(t, "/api/products?category=frozen")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListCategories(t *testing.T) {
	resp := doGet(t, "/api/categories")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	categories := decodeJSON[[]categoryResponse](t, resp)
	if len(categories) == 0 {
		t.Fatal("expected at least one category")
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.Name == "" {
			t.Errorf("category %s has empty name", c.ID)
		}
		seen[c.ID] = true
	}
	if !seen["fruits"] || !seen["vegetables"] {
		t.Errorf("categories missing expected entries: %+v", categories)
	}
}

func TestGetProduct(t *testing.T) {
	resp := doGet(t, "/api/products/apple-kashmir")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	product := decodeJSON[productResponse](t, resp)
	if product.ID != "apple-kashmir" {
		t.Errorf("id: got %q, want %q", product.ID, "apple-kashmir")
	}
	if product.Name != "Kashmir Apples" {
		t.Errorf("name: got %q, want %q", product.Name, "Kashmir Apples")
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	resp := doGet(t, "/api/products/no-such-product")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	errResp := decodeJSON[errorResponse](t, resp)
	if errResp.Code != 404 {
		t.Errorf("error code: got %d, want 404", errResp.Code)
	}
}
