package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCartHandler_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{name: "missing", token: "", code: "MISSING_TOKEN"},
		{name: "rejected", token: "forged", code: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/get", tt.token, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestCartHandler_Add(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()

	ts.cart.EXPECT().AddSimple(mock.Anything, ts.userID, &usecase.AddSimpleItemInput{
		ProductID: productID,
		Size:      entity.SizeMedium,
		Quantity:  2,
	}).Return(&usecase.CartView{UserID: ts.userID, Total: entity.Rupees(2400), Version: 1}, nil)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/add", customerToken, map[string]any{
		"product_id": productID,
		"size":       "medium",
		"quantity":   2,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view usecase.CartView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, entity.Rupees(2400), view.Total)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestCartHandler_Add_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "zero quantity", body: map[string]any{"product_id": uuid.New(), "quantity": 0}},
		{name: "unknown size", body: map[string]any{"product_id": uuid.New(), "size": "huge", "quantity": 1}},
		{name: "missing product", body: map[string]any{"quantity": 1}},
		{name: "quantity over line limit", body: map[string]any{"product_id": uuid.New(), "quantity": 100}},
		{name: "quantity that would overflow", body: map[string]any{"product_id": uuid.New(), "quantity": 200_000_000_000_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/add", customerToken, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.NotNil(t, env.Error.Details)
		})
	}
}

func TestCartHandler_AddCombo(t *testing.T) {
	ts := newTestServer(t)
	rose, orchid := uuid.New(), uuid.New()

	ts.cart.EXPECT().AddCombo(mock.Anything, ts.userID, mock.MatchedBy(func(in *usecase.AddComboInput) bool {
		return len(in.Items) == 2 && in.Items[1].Color == "white" && in.DeliveryPincode == "560001"
	})).Return(&usecase.CartView{UserID: ts.userID, Total: entity.Rupees(1040)}, nil)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/cart/addCombo", customerToken, map[string]any{
		"items": []map[string]any{
			{"product_id": rose, "quantity": 1},
			{"product_id": orchid, "size": "small", "color": "white", "quantity": 1},
		},
		"delivery_pincode": "560001",
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddCombo_RejectsEmptyItems(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/cart/addCombo", customerToken, map[string]any{"items": []any{}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_QuantityUpperBound(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{
			name: "combo item",
			path: "/api/v1/cart/addCombo",
			body: map[string]any{"items": []map[string]any{{"product_id": uuid.New(), "quantity": 100}}},
		},
		{
			name: "update quantity",
			path: "/api/v1/cart/updateQuantity",
			body: map[string]any{"product_id": uuid.New(), "quantity": 200_000_000_000_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := ts.do(t, http.MethodPost, tt.path, customerToken, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestCartHandler_UpdateQuantity_NotFound(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()

	ts.cart.EXPECT().UpdateQuantity(mock.Anything, ts.userID, mock.Anything).
		Return(nil, domainerrors.ErrCartItemNotFound.WrapMessage("no simple line for product"))

	rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/updateQuantity", customerToken, map[string]any{
		"product_id": productID,
		"quantity":   3,
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", env.Error.Code)
}

func TestCartHandler_RemoveLine(t *testing.T) {
	ts := newTestServer(t)
	lineID := uuid.New()

	ts.cart.EXPECT().RemoveLine(mock.Anything, ts.userID, lineID).Return(&usecase.CartView{UserID: ts.userID}, nil)

	rec, _ := ts.do(t, http.MethodDelete, "/api/v1/cart/lines/"+lineID.String(), customerToken, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/cart/lines/not-a-uuid", customerToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()

	ts.cart.EXPECT().Remove(mock.Anything, ts.userID, productID).Return(&usecase.CartView{UserID: ts.userID}, nil)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/cart/remove", customerToken, map[string]any{"product_id": productID}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
