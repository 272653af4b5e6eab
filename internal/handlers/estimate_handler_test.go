package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wave-estimates-backend/internal/dto/request"
	"wave-estimates-backend/internal/handlers/mocks"
	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/services/estimate"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(svc IEstimateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEstimateHandler(svc)

	r := gin.New()
	r.GET("/estimates", h.List)
	r.GET("/estimates/:id", h.Get)
	r.POST("/estimates", h.Create)
	r.PUT("/estimates/:id", h.Update)
	r.PATCH("/estimates/:id/status", h.UpdateStatus)
	r.DELETE("/estimates/:id", h.Delete)
	r.GET("/estimates/:id/events", h.Events)
	r.GET("/estimates/:id/receipt", h.Receipt)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, json.RawMessage) {
	t.Helper()
	var body struct {
		Code   string          `json:"code"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Code, body.Detail
}

func sampleEstimate() *models.Estimate {
	customerID := uint(4)
	return &models.Estimate{
		ID:         2,
		Number:     "45304",
		Date:       "2026-02-25",
		ValidUntil: "2026-03-27",
		Status:     "Draft",
		Type:       "draft",
		CustomerID: &customerID,
		Customer:   &models.Customer{ID: 4, Name: "Amal Perera"},
		LineItems: []models.LineItem{
			{ID: 1, Name: "HP Laptop", Quantity: 2, Price: 450},
			{ID: 2, Name: "Pen", Quantity: 30, Price: 10},
		},
	}
}

func TestEstimateHandler_Get(t *testing.T) {
	t.Run("found by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Get(gomock.Any(), "45304").Return(sampleEstimate(), nil)

		w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates/45304", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["amount"] != "$1,200.00" || body["customer"] != "Amal Perera" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Get(gomock.Any(), "999").Return(nil, estimate.ErrEstimateNotFound)

		w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		code, detail := decodeError(t, w)
		if code != "ESTIMATE_NOT_FOUND" || string(detail) != `"Estimate not found"` {
			t.Fatalf("unexpected error body: %s %s", code, detail)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Get(gomock.Any(), "1").Return(nil, errors.New("connection refused"))

		w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		code, _ := decodeError(t, w)
		if code != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %s", code)
		}
		if strings.Contains(w.Body.String(), "connection refused") {
			t.Fatal("internal cause leaked to the client")
		}
	})
}

func TestEstimateHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIEstimateService(ctrl)
	svc.EXPECT().
		List(gomock.Any(), request.EstimateListQuery{Status: "Draft", Search: "amal", DateFrom: "2026-02-01"}).
		Return([]models.Estimate{*sampleEstimate()}, nil)

	w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates?status=Draft&search=amal&date_from=2026-02-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body) != 1 || body[0]["number"] != "45304" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEstimateHandler_ListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIEstimateService(ctrl)
	svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
	}
}

func TestEstimateHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)

		w := doRequest(newEstimateRouter(svc), http.MethodPost, "/estimates", "{")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		code, _ := decodeError(t, w)
		if code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", code)
		}
	})

	t.Run("line item without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)

		w := doRequest(newEstimateRouter(svc), http.MethodPost, "/estimates", `{"items":[{"name":"Pen"},{"price":10}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		_, detail := decodeError(t, w)
		var fields []FieldError
		if err := json.Unmarshal(detail, &fields); err != nil {
			t.Fatal(err)
		}
		if len(fields) != 1 || fields[0].Field != "items[1].name" || fields[0].Message != "field required" {
			t.Fatalf("unexpected fields: %+v", fields)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)

		w := doRequest(newEstimateRouter(svc), http.MethodPost, "/estimates", `{"customer_id":"abc"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req request.EstimateCreateRequest) (*models.Estimate, error) {
				if len(req.Items) != 1 || req.Items[0].ResolveQuantity() != 1 {
					t.Errorf("unexpected items: %+v", req.Items)
				}
				if req.Number != nil {
					t.Errorf("number should be absent, got %q", *req.Number)
				}
				return &models.Estimate{ID: 7, Number: "45308", Status: "Draft", Type: "draft",
					LineItems: []models.LineItem{{Name: "Pen", Quantity: 1, Price: 10}}}, nil
			})

		w := doRequest(newEstimateRouter(svc), http.MethodPost, "/estimates", `{"items":[{"name":"Pen","price":10}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["number"] != "45308" || body["amount"] != "$10.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEstimateHandler_Update(t *testing.T) {
	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)

		w := doRequest(newEstimateRouter(svc), http.MethodPut, "/estimates/45304x", `{"notes":"x"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("empty items are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Update(gomock.Any(), uint(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, req request.EstimateUpdateRequest) (*models.Estimate, error) {
				if !req.ReplacesItems() || len(req.Items) != 0 {
					t.Errorf("expected an empty replacement list, got %#v", req.Items)
				}
				est := sampleEstimate()
				est.LineItems = nil
				return est, nil
			})

		w := doRequest(newEstimateRouter(svc), http.MethodPut, "/estimates/2", `{"items":[]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"items":[]`) || !strings.Contains(w.Body.String(), `"amount":"$0.00"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		svc.EXPECT().Update(gomock.Any(), uint(99), gomock.Any()).Return(nil, estimate.ErrEstimateNotFound)

		w := doRequest(newEstimateRouter(svc), http.MethodPut, "/estimates/99", `{"notes":"x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)

		w := doRequest(newEstimateRouter(svc), http.MethodPatch, "/estimates/45304/status", `{}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockIEstimateService(ctrl)
		est := sampleEstimate()
		est.Status, est.Type = "Saved", "active"
		svc.EXPECT().UpdateStatus(gomock.Any(), "45304", request.StatusUpdateRequest{Status: "Saved"}).Return(est, nil)

		w := doRequest(newEstimateRouter(svc), http.MethodPatch, "/estimates/45304/status", `{"status":"Saved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"type":"active"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		mockErr  error
		callsSvc bool
		want     int
	}{
		{"deleted", "/estimates/3", nil, true, http.StatusNoContent},
		{"not found", "/estimates/3", estimate.ErrEstimateNotFound, true, http.StatusNotFound},
		{"non-numeric id", "/estimates/abc", nil, false, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockIEstimateService(ctrl)
			if tt.callsSvc {
				svc.EXPECT().Delete(gomock.Any(), uint(3)).Return(tt.mockErr)
			}

			w := doRequest(newEstimateRouter(svc), http.MethodDelete, tt.path, "")
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusNoContent && w.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %q", w.Body.String())
			}
		})
	}
}

func TestEstimateHandler_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIEstimateService(ctrl)
	svc.EXPECT().Events(gomock.Any(), "45304").Return([]models.EstimateEvent{
		{EstimateID: 2, EstimateNumber: "45304", Action: models.EventCreated, Details: []byte(`{"line_items":2}`)},
	}, nil)

	w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates/45304/events", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"action":"created"`) || !strings.Contains(w.Body.String(), `"line_items":2`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestEstimateHandler_Receipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIEstimateService(ctrl)
	svc.EXPECT().Get(gomock.Any(), "45304").Return(sampleEstimate(), nil)

	w := doRequest(newEstimateRouter(svc), http.MethodGet, "/estimates/45304/receipt", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=estimate-45304.pdf" {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
}
