package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/mocks"
	"github.com/bookline/gateway/internal/usecase/payment"
)

func newPaymentRouter(h *handler.PaymentHandler) *gin.Engine {
	router := setupRouter()
	withToken := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("access_token", "tok")
			next(c)
		}
	}
	router.POST("/payments", withToken(h.Pay))
	router.GET("/payments/status", withToken(h.Status))
	return router
}

func TestPaymentHandler_Pay(t *testing.T) {
	t.Run("initiates upi collect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		paymentSvc := mocks.NewMockPaymentService(ctrl)
		router := newPaymentRouter(handler.NewPaymentHandler(paymentSvc))

		paymentSvc.EXPECT().
			Pay(gomock.Any(), "tok", payment.PayInput{
				OrderID: "order-1",
				Method:  payment.MethodUPIID,
				UPIID:   "alice@okhdfc",
			}).
			Return(&payment.PayResult{
				Amount:   499,
				Currency: "INR",
				UPILink:  "upi://pay?x=1",
				Method:   payment.MethodUPIID,
			}, nil)

		body := `{"order_id":"order-1","payment_method":"upi_id","upi_id":"alice@okhdfc"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "upi://pay?x=1", resp["upi_link"])
		assert.Equal(t, 499.0, resp["amount"])
		assert.NotContains(t, resp, "qr_code")
	})

	t.Run("accepts numeric order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		paymentSvc := mocks.NewMockPaymentService(ctrl)
		router := newPaymentRouter(handler.NewPaymentHandler(paymentSvc))

		paymentSvc.EXPECT().
			Pay(gomock.Any(), "tok", payment.PayInput{
				OrderID: "118",
				Method:  payment.MethodUPIQR,
			}).
			Return(&payment.PayResult{QRCode: "qr-data", Currency: "INR"}, nil)

		body := `{"order_id":118,"payment_method":"upi_qr"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns caller-facing message for invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		paymentSvc := mocks.NewMockPaymentService(ctrl)
		router := newPaymentRouter(handler.NewPaymentHandler(paymentSvc))

		paymentSvc.EXPECT().
			Pay(gomock.Any(), "tok", gomock.Any()).
			Return(nil, &payment.InvalidInputError{Message: "Invalid UPI ID"})

		body := `{"order_id":"order-1","payment_method":"upi_id","upi_id":"nope"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid UPI ID")
	})

	t.Run("relays processor failure status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		paymentSvc := mocks.NewMockPaymentService(ctrl)
		router := newPaymentRouter(handler.NewPaymentHandler(paymentSvc))

		paymentSvc.EXPECT().
			Pay(gomock.Any(), "tok", gomock.Any()).
			Return(nil, &backend.UpstreamError{StatusCode: 502, Details: "processor unavailable"})

		body := `{"order_id":"order-1","payment_method":"upi_qr"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestPaymentHandler_Status(t *testing.T) {
	t.Run("returns order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		paymentSvc := mocks.NewMockPaymentService(ctrl)
		router := newPaymentRouter(handler.NewPaymentHandler(paymentSvc))

		paymentSvc.EXPECT().
			OrderStatus(gomock.Any(), "tok", "order-9").
			Return(&entity.Order{
				ID:      "order-9",
				Status:  "PAID",
				Payment: &entity.OrderPayment{OrderAmount: 499, OrderCurrency: "INR", Status: "SUCCESS"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments/status?order_id=order-9", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "order-9", resp["id"])
		assert.Equal(t, "PAID", resp["status"])
	})

	t.Run("requires order_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newPaymentRouter(handler.NewPaymentHandler(mocks.NewMockPaymentService(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/payments/status", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
