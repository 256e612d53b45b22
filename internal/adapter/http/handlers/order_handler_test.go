package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"acme_shop/internal/adapter/http/handlers/mocks"
	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIOrderUseCase) *gin.Engine {
		h := NewOrderHandler(uc)
		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateStatus)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatus("returned")).
			Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1", bytes.NewBufferString(`{"status":"returned"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ghost", entities.OrderStatusDelivered).
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ghost", bytes.NewBufferString(`{"status":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns updated order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusDelivered).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusDelivered}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1", bytes.NewBufferString(`{"status":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "delivered" {
			t.Fatalf("unexpected status in body: %v", body["status"])
		}
	})
}

func TestOrderHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIOrderUseCase) *gin.Engine {
		h := NewOrderHandler(uc)
		r := gin.New()
		r.POST("/v1/orders", h.Checkout)
		return r
	}

	t.Run("missing items rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		payload := `{"customer_name":"Jo","customer_email":"a@b.com","shipping_address":"street 1","items":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, o entities.Order) (entities.Order, error) {
				o.ID = "o-1"
				o.Status = entities.OrderStatusPending
				o.TotalAmount = 39.80
				return o, nil
			})

		payload := `{
			"customer_name":"Jo",
			"customer_email":"a@b.com",
			"shipping_address":"street 1",
			"items":[{"product_id":"p-1","product_name":"Boots","quantity":2,"price":19.90}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "o-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase error mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db down"))

		payload := `{
			"customer_name":"Jo",
			"customer_email":"a@b.com",
			"shipping_address":"street 1",
			"items":[{"product_id":"p-1","quantity":1,"price":5}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
