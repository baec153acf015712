package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"florist/config"
	"florist/internal/delivery/api"
	apimiddleware "florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/response"
	"florist/internal/delivery/api/router"
	"florist/internal/delivery/api/router/handler"
	"florist/internal/domain/service"
	servicemocks "florist/internal/mocks/service"
	usecasemocks "florist/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

type testServer struct {
	echo     *echo.Echo
	userID   uuid.UUID
	cart     *usecasemocks.MockCartUsecase
	order    *usecasemocks.MockOrderUsecase
	payment  *usecasemocks.MockPaymentUsecase
	delivery *usecasemocks.MockDeliveryUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	ts := &testServer{
		userID:   uuid.New(),
		cart:     usecasemocks.NewMockCartUsecase(t),
		order:    usecasemocks.NewMockOrderUsecase(t),
		payment:  usecasemocks.NewMockPaymentUsecase(t),
		delivery: usecasemocks.NewMockDeliveryUsecase(t),
	}

	tokens := servicemocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(customerToken).
		Return(&service.Claims{UserID: ts.userID, Roles: []string{"customer"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"customer", "admin"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	ts.echo = api.NewEcho(cfg, logger, router.RouterParams{
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: ts.cart, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: ts.order, Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: ts.payment, Logger: logger}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: ts.delivery}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{OrderUC: ts.order, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens, Logger: logger}),
	})

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}
