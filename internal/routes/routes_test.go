package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wave-estimates-backend/internal/config"
	"wave-estimates-backend/internal/db"
	"wave-estimates-backend/internal/testutil"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutil.NewDB(t)
	if seed {
		if _, err := db.Seed(context.Background(), gdb); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewRouter(config.Default(), gdb)
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

type estimateBody struct {
	ID          uint                     `json:"id"`
	Number      string                   `json:"number"`
	Date        string                   `json:"date"`
	ValidUntil  string                   `json:"valid_until"`
	Status      string                   `json:"status"`
	Type        string                   `json:"type"`
	Customer    string                   `json:"customer"`
	Amount      string                   `json:"amount"`
	CustomerObj map[string]interface{}   `json:"customer_obj"`
	Items       []map[string]interface{} `json:"items"`
}

func TestHealth(t *testing.T) {
	r := newTestServer(t, false)

	w := call(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestSeededEstimates(t *testing.T) {
	r := newTestServer(t, true)

	w := call(t, r, http.MethodGet, "/api/estimates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []estimateBody
	decode(t, w, &list)
	if len(list) != 5 {
		t.Fatalf("expected 5 seeded estimates, got %d", len(list))
	}
	if list[0].Number != "45303" || list[4].Number != "45307" {
		t.Fatalf("expected date-descending order, got %s..%s", list[0].Number, list[4].Number)
	}

	byNumber := call(t, r, http.MethodGet, "/api/estimates/45304", "")
	var est estimateBody
	decode(t, byNumber, &est)
	if est.Amount != "$1,200.00" || est.Customer != "Amal Perera" || len(est.Items) != 2 {
		t.Fatalf("unexpected 45304: %+v", est)
	}

	byID := call(t, r, http.MethodGet, "/api/estimates/"+jsonNumber(est.ID), "")
	if byID.Body.String() != byNumber.Body.String() {
		t.Fatalf("id and number lookups differ:\n%s\n%s", byID.Body.String(), byNumber.Body.String())
	}

	w = call(t, r, http.MethodGet, "/api/estimates?customer=Amal%20Perera&status=Draft", "")
	decode(t, w, &list)
	if len(list) != 1 || list[0].Number != "45304" {
		t.Fatalf("customer+status filter returned %+v", list)
	}

	w = call(t, r, http.MethodGet, "/api/estimates?search=KAMAL", "")
	decode(t, w, &list)
	if len(list) != 1 || list[0].Number != "45307" {
		t.Fatalf("search returned %+v", list)
	}
}

func TestEstimateLifecycle(t *testing.T) {
	r := newTestServer(t, false)

	w := call(t, r, http.MethodPost, "/api/customers", `{"name":"Nimal Silva"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create customer: expected 201, got %d", w.Code)
	}
	var customer struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	decode(t, w, &customer)
	if customer.Email != "" {
		t.Fatalf("expected empty email default, got %q", customer.Email)
	}

	w = call(t, r, http.MethodPost, "/api/estimates",
		`{"customer_id":`+jsonNumber(customer.ID)+`,"items":[{"name":"HP Laptop","price":450},{"name":"Pen","quantity":30,"price":10}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create estimate: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var est estimateBody
	decode(t, w, &est)
	if est.Number != "45303" || est.Status != "Draft" || est.Type != "draft" {
		t.Fatalf("unexpected defaults: %+v", est)
	}
	if est.Amount != "$750.00" || est.Customer != "Nimal Silva" || est.CustomerObj == nil {
		t.Fatalf("unexpected read assembly: %+v", est)
	}
	id := jsonNumber(est.ID)

	w = call(t, r, http.MethodPut, "/api/estimates/"+id, `{"notes":"call first"}`)
	decode(t, w, &est)
	if w.Code != http.StatusOK || len(est.Items) != 2 {
		t.Fatalf("update without items: %d %+v", w.Code, est)
	}

	w = call(t, r, http.MethodPut, "/api/estimates/"+id, `{"items":[]}`)
	decode(t, w, &est)
	if len(est.Items) != 0 || est.Amount != "$0.00" {
		t.Fatalf("update with empty items: %+v", est)
	}

	w = call(t, r, http.MethodPatch, "/api/estimates/45303/status", `{"status":"Saved"}`)
	decode(t, w, &est)
	if est.Status != "Saved" || est.Type != "active" {
		t.Fatalf("status change: %+v", est)
	}

	w = call(t, r, http.MethodGet, "/api/estimates/45303/events", "")
	var events []map[string]interface{}
	decode(t, w, &events)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	w = call(t, r, http.MethodGet, "/api/estimates/45303/receipt", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("receipt: %d %s", w.Code, w.Header().Get("Content-Type"))
	}

	w = call(t, r, http.MethodDelete, "/api/estimates/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = call(t, r, http.MethodGet, "/api/estimates/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
	w = call(t, r, http.MethodDelete, "/api/estimates/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestDuplicateNumberIsInternalError(t *testing.T) {
	r := newTestServer(t, false)

	if w := call(t, r, http.MethodPost, "/api/estimates", `{"number":"100"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	w := call(t, r, http.MethodPost, "/api/estimates", `{"number":"100"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/estimates", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed")
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := newTestServer(t, false)

	w := call(t, r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var doc struct {
		Paths map[string]map[string]interface{} `json:"paths"`
	}
	decode(t, w, &doc)
	for _, path := range []string{"/api/estimates", "/api/estimates/{id}", "/api/estimates/{id}/status", "/api/customers/{id}", "/api/health"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("doc is missing %s", path)
		}
	}
	if _, ok := doc.Paths["/api/estimates/{id}"]["delete"]; !ok {
		t.Error("doc is missing DELETE /api/estimates/{id}")
	}
}

func TestGinPathToSwaggerPath(t *testing.T) {
	if got := ginPathToSwaggerPath("/api/estimates/:id/status"); got != "/api/estimates/{id}/status" {
		t.Fatalf("got %q", got)
	}
}

func jsonNumber(n uint) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}
