//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestAdmin_NoKey(t *testing.T) {
	resp := doGet(t, "/api/admin/dashboard")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	errResp := decodeJSON[errorResponse](t, resp)
	if errResp.Code != 401 {
		t.Errorf("error code: got %d, want 401", errResp.Code)
	}
}

func TestAdmin_InvalidKey(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/dashboard", nil,
		map[string]string{"api_key": "not-the-key"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAdmin_Dashboard(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/dashboard", nil, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	st := decodeJSON[dashboardResponse](t, resp)
	// The fixture seeder creates 20 customers with orders and feedback.
	if st.TotalCustomers != 20 {
		t.Errorf("totalCustomers: got %d, want 20", st.TotalCustomers)
	}
	if st.TotalOrders == 0 {
		t.Error("totalOrders: got 0, want seeded orders")
	}
	if st.TotalFeedback == 0 {
		t.Error("totalFeedback: got 0, want seeded feedback")
	}

	statusTotal := 0
	for _, n := range st.OrdersByStatus {
		statusTotal += n
	}
	if statusTotal != st.TotalOrders {
		t.Errorf("ordersByStatus sums to %d, want %d", statusTotal, st.TotalOrders)
	}
}

func TestAdmin_ListCustomers(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/customers", nil, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	customers := decodeJSON[[]map[string]any](t, resp)
	if len(customers) != 20 {
		t.Fatalf("expected 20 customers, got %d", len(customers))
	}
	first, _ := customers[0]["id"].(string)
	if first == "" {
		t.Error("first customer has no id")
	}

	resp = doRequest(t, http.MethodGet, "/api/admin/customers/"+first, nil, adminHeaders())
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get customer %s: expected 200, got %d", first, resp.StatusCode)
	}
}

func TestAdmin_GetCustomer_NotFound(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/customers/CUST-0000", nil, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAdmin_ListOrders(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/orders", nil, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	orders := decodeJSON[[]orderResponse](t, resp)
	if len(orders) == 0 {
		t.Fatal("expected seeded orders")
	}
}

func TestAdmin_FeedbackLifecycle(t *testing.T) {
	// Submit a fresh entry, then move it through review on the admin side.
	resp := doRequest(t, http.MethodPost, "/api/feedback", map[string]any{
		"customerName": "Meera Nair",
		"email":        "meera.nair@example.com",
		"rating":       4,
		"message":      "Good okra, delivery could be faster.",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit feedback: expected 201, got %d", resp.StatusCode)
	}
	created := decodeJSON[map[string]any](t, resp)
	resp.Body.Close()
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created feedback has no id")
	}

	resp = doRequest(t, http.MethodPatch, "/api/admin/feedback/"+id,
		map[string]any{"status": "reviewed"}, adminHeaders())
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("update status: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doRequest(t, http.MethodGet, "/api/admin/feedback", nil, adminHeaders())
	entries := decodeJSON[[]map[string]any](t, resp)
	resp.Body.Close()

	found := false
	for _, e := range entries {
		if e["id"] == id {
			found = true
			if e["status"] != "reviewed" {
				t.Errorf("status: got %v, want reviewed", e["status"])
			}
		}
	}
	if !found {
		t.Errorf("feedback %s not in admin listing", id)
	}
}

func TestAdmin_UpdateFeedback_InvalidStatus(t *testing.T) {
	resp := doRequest(t, http.MethodPatch, "/api/admin/feedback/FEED-3000",
		map[string]any{"status": "archived"}, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAdmin_ListBulkOrders(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/admin/bulk-orders", nil, adminHeaders())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
