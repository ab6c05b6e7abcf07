package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"siddhartha-be/internal/config"
	"siddhartha-be/internal/order"
	"siddhartha-be/internal/payment"
	"siddhartha-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GenerateConfig(ctx context.Context, userID, orderID uint, requestedTotal float64) (*payment.GatewayConfig, error) {
	args := m.Called(ctx, userID, orderID, requestedTotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.GatewayConfig), args.Error(1)
}

func (m *MockPaymentService) Verify(ctx context.Context, encodedPayload string) (*payment.VerificationResult, error) {
	args := m.Called(ctx, encodedPayload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerificationResult), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID uint, input order.CreateOrderInput) (*order.Order, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID, orderID uint, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListUserOrders(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID uint, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// --- Harness ---

const testJWTSecret = "api-test-secret"

func testRouter(payments payment.Service, orders order.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Payments: payments, Orders: orders}
	cfg := &config.Config{
		AppEnv:      "test",
		FrontendURL: "http://localhost:5173",
		JWTSecret:   testJWTSecret,
	}
	return NewRouter(h, cfg)
}

var addrSeq int

// doJSON issues a request with a unique client address so the per-IP rate
// limiter never interferes across sub-tests.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	addrSeq++
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", addrSeq/250, addrSeq%250+1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, u user.User) string {
	t.Helper()
	token, err := user.GenerateJWT([]byte(testJWTSecret), u)
	require.NoError(t, err)
	return token
}

func settledOrder() *order.Order {
	now := time.Now()
	return &order.Order{
		ID:         42,
		UserID:     7,
		TotalPrice: 2260,
		IsPaid:     true,
		PaidAt:     &now,
		Status:     order.StatusProcessing,
		PaymentResult: &order.PaymentResult{
			TransactionID: "000BQNR",
			Status:        "COMPLETE",
		},
	}
}

// --- Payment routes ---

func TestEsewaVerifyRoute(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("Verify", mock.Anything, "encoded-payload").
			Return(&payment.VerificationResult{Order: settledOrder()}, nil)
		r := testRouter(payments, nil)

		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/verify", "", gin.H{"data": "encoded-payload"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			AlreadyPaid bool `json:"alreadyPaid"`
			Order       struct {
				ID     uint   `json:"id"`
				IsPaid bool   `json:"isPaid"`
				Status string `json:"status"`
			} `json:"order"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.AlreadyPaid)
		assert.True(t, resp.Order.IsPaid)
		assert.Equal(t, "Processing", resp.Order.Status)
	})

	t.Run("DuplicateStillSucceeds", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("Verify", mock.Anything, mock.Anything).
			Return(&payment.VerificationResult{Order: settledOrder(), AlreadyPaid: true}, nil)
		r := testRouter(payments, nil)

		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/verify", "", gin.H{"data": "encoded-payload"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alreadyPaid":true`)
	})

	t.Run("MissingBody", func(t *testing.T) {
		r := testRouter(new(MockPaymentService), nil)
		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/verify", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ErrorMapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"Decode", payment.ErrDecode, http.StatusBadRequest},
			{"Incomplete", payment.ErrPaymentIncomplete, http.StatusBadRequest},
			{"Signature", payment.ErrSignatureInvalid, http.StatusBadRequest},
			{"Amount", payment.ErrAmountMismatch, http.StatusBadRequest},
			{"OrderNotFound", order.ErrOrderNotFound, http.StatusNotFound},
			{"Unknown", fmt.Errorf("db connection lost"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				payments := new(MockPaymentService)
				payments.On("Verify", mock.Anything, mock.Anything).Return(nil, tc.err)
				r := testRouter(payments, nil)

				w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/verify", "", gin.H{"data": "x"})
				assert.Equal(t, tc.code, w.Code)
			})
		}
	})
}

func TestEsewaConfigRoute(t *testing.T) {
	t.Run("RequiresAuth", func(t *testing.T) {
		r := testRouter(new(MockPaymentService), nil)
		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/config", "", gin.H{"orderId": 42, "amount": 2260})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("GenerateConfig", mock.Anything, uint(7), uint(42), float64(2260)).
			Return(&payment.GatewayConfig{
				Signature:       "sig",
				TransactionUUID: "42-1700000000000000000",
				ProductCode:     "EPAYTEST",
			}, nil)
		r := testRouter(payments, nil)

		token := tokenFor(t, user.User{ID: 7, Email: "shopper@example.com"})
		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/config", token, gin.H{"orderId": 42, "amount": 2260})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "42-1700000000000000000")
		payments.AssertExpectations(t)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("GenerateConfig", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, payment.ErrOrderAlreadyPaid)
		r := testRouter(payments, nil)

		token := tokenFor(t, user.User{ID: 7})
		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/config", token, gin.H{"orderId": 42, "amount": 2260})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NotOwner", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("GenerateConfig", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, order.ErrUnauthorized)
		r := testRouter(payments, nil)

		token := tokenFor(t, user.User{ID: 99})
		w := doJSON(t, r, http.MethodPost, "/api/payment/esewa/config", token, gin.H{"orderId": 42, "amount": 2260})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// --- Order routes ---

func TestOrderRoutes(t *testing.T) {
	t.Run("CreateRequiresAuth", func(t *testing.T) {
		r := testRouter(nil, new(MockOrderService))
		w := doJSON(t, r, http.MethodPost, "/api/orders", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateOrder", mock.Anything, uint(7), mock.MatchedBy(func(in order.CreateOrderInput) bool {
			return len(in.Items) == 1 && in.PaymentMethod == order.PaymentEsewa
		})).Return(&order.Order{ID: 42, UserID: 7, TotalPrice: 2260, Status: order.StatusPlaced}, nil)
		r := testRouter(nil, orders)

		token := tokenFor(t, user.User{ID: 7})
		w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
			"orderItems":      []gin.H{{"product": 1, "qty": 2, "size": "M"}},
			"shippingAddress": gin.H{"street": "Thamel", "city": "Kathmandu", "district": "Kathmandu", "phone": "9800000000"},
			"paymentMethod":   "eSewa",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPrice":2260`)
	})

	t.Run("StatusUpdateAdminOnly", func(t *testing.T) {
		orders := new(MockOrderService)
		r := testRouter(nil, orders)

		token := tokenFor(t, user.User{ID: 7, IsAdmin: false})
		w := doJSON(t, r, http.MethodPut, "/api/orders/42/status", token, gin.H{"status": "Shipped"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StatusUpdateAsAdmin", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("UpdateStatus", mock.Anything, uint(42), order.StatusShipped).Return(nil)
		r := testRouter(nil, orders)

		token := tokenFor(t, user.User{ID: 1, IsAdmin: true})
		w := doJSON(t, r, http.MethodPut, "/api/orders/42/status", token, gin.H{"status": "Shipped"})
		assert.Equal(t, http.StatusOK, w.Code)
		orders.AssertExpectations(t)
	})
}
