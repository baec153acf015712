package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutBody() map[string]any {
	return map[string]any{
		"address": map[string]any{
			"name":    "Asha",
			"phone":   "9876543210",
			"line1":   "12 MG Road",
			"city":    "Bengaluru",
			"state":   "KA",
			"pincode": "560001",
		},
		"delivery": map[string]any{"type": "fixed", "same_day": true},
	}
}

func TestOrderHandler_Checkout(t *testing.T) {
	ts := newTestServer(t)
	orderID := uuid.New()

	ts.order.EXPECT().Checkout(mock.Anything, ts.userID, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
		return in.CheckoutToken == "retry-1" &&
			in.Address.Pincode == "560001" &&
			in.Delivery != nil && in.Delivery.Type == entity.DeliveryFixed && in.Delivery.SameDay
	})).Return(&entity.Order{ID: orderID, UserID: ts.userID, Status: entity.PaymentPending, OrderStatus: entity.FulfillmentCreated}, nil)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/order/checkout", customerToken, checkoutBody(),
		map[string]string{deliverycontext.HeaderIdempotencyKey: "retry-1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.PaymentPending, order.Status)
}

func TestOrderHandler_Checkout_Validation(t *testing.T) {
	ts := newTestServer(t)

	badPincode := checkoutBody()
	badPincode["address"].(map[string]any)["pincode"] = "56001"

	badDelivery := checkoutBody()
	badDelivery["delivery"] = map[string]any{"type": "drone"}

	noAddress := checkoutBody()
	delete(noAddress, "address")

	for name, body := range map[string]map[string]any{
		"bad pincode":  badPincode,
		"bad delivery": badDelivery,
		"no address":   noAddress,
	} {
		t.Run(name, func(t *testing.T) {
			rec, env := ts.do(t, http.MethodPost, "/api/v1/order/checkout", customerToken, body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	ts := newTestServer(t)

	ts.order.EXPECT().Checkout(mock.Anything, ts.userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "cart is empty"))

	rec, env := ts.do(t, http.MethodPost, "/api/v1/order/checkout", customerToken, checkoutBody(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOrderHandler_SelectPaymentMethod(t *testing.T) {
	ts := newTestServer(t)
	orderID := uuid.New()

	ts.order.EXPECT().SelectPaymentMethod(mock.Anything, ts.userID, orderID, entity.PaymentMethodCOD).
		Return(&entity.Order{ID: orderID, PaymentMethod: entity.PaymentMethodCOD, Status: entity.PaymentPaid}, nil)

	rec, _ := ts.do(t, http.MethodPatch, "/api/v1/order/"+orderID.String()+"/payment-method", customerToken,
		map[string]any{"payment_method": "COD"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodPatch, "/api/v1/order/"+orderID.String()+"/payment-method", customerToken,
		map[string]any{"payment_method": "CARD"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_GetOrder_ErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "other user", err: domainerrors.ErrOrderOwnershipViolation.WrapMessage("order belongs to another user"), status: http.StatusForbidden, code: "ORDER_OWNERSHIP_VIOLATION"},
		{name: "missing", err: domainerrors.ErrOrderNotFound.WrapMessage("order not found"), status: http.StatusNotFound, code: "ORDER_NOT_FOUND"},
		{name: "storage failure", err: errors.New("connection reset"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := uuid.New()
			ts.order.EXPECT().GetOrder(mock.Anything, ts.userID, orderID).Return(nil, tt.err)

			rec, env := ts.do(t, http.MethodGet, "/api/v1/order/"+orderID.String(), customerToken, nil, nil)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	ts := newTestServer(t)

	ts.order.EXPECT().ListOrders(mock.Anything, ts.userID).Return([]*entity.Order{}, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/orders", customerToken, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}
