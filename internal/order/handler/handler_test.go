package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/model"
	"github.com/costeam/cos-backend/internal/order"
)

type mockOrderUseCase struct {
	ListOrdersByEmailFunc func(ctx context.Context, email string) ([]model.Order, error)
}

func (m *mockOrderUseCase) RecordOrder(ctx context.Context, email string, items []model.OrderItem) (*model.Order, error) {
	return nil, nil
}

func (m *mockOrderUseCase) ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return m.ListOrdersByEmailFunc(ctx, email)
}

func newRouter(uc order.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(uc, zap.NewNop())
	r := gin.New()
	r.GET("/api/order/:email", h.ListByEmail)
	return r
}

func TestListByEmail(t *testing.T) {
	r := newRouter(&mockOrderUseCase{
		ListOrdersByEmailFunc: func(_ context.Context, email string) ([]model.Order, error) {
			assert.Equal(t, "buyer@club.example", email)
			return []model.Order{{
				ID:     "o-1",
				Email:  email,
				Items:  model.OrderItems{{Name: "Shirt", Quantity: 2, UnitPrice: 10}},
				Status: order.StatusProcessing,
			}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/order/buyer@club.example", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Data    []model.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Orders found", resp.Message)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "o-1", resp.Data[0].ID)
}

func TestListByEmailNoOrdersIs200Failure(t *testing.T) {
	r := newRouter(&mockOrderUseCase{
		ListOrdersByEmailFunc: func(_ context.Context, _ string) ([]model.Order, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/order/ghost@club.example", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "No orders found", resp["message"])
}
