package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler/dto/request"
	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
	"github.com/bookline/gateway/internal/pkg/httputil"
	"github.com/bookline/gateway/internal/usecase/payment"
)

type PaymentHandler struct {
	paymentSvc PaymentService
}

func NewPaymentHandler(paymentSvc PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Pay godoc
//
//	@Summary		Initiate a payment
//	@Description	Charge an order via UPI collect, UPI QR or card
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.PaymentRequest	true	"Payment data"
//	@Success		200		{object}	response.PaymentResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Failure		504		{object}	httputil.ErrorResponse	"Upstream timed out"
//	@Router			/payments [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	in := payment.PayInput{
		OrderID: req.OrderID.String(),
		Method:  req.PaymentMethod,
		UPIID:   req.UPIID,
	}
	if req.CardDetails != nil {
		in.Card = &backend.CardDetails{
			Number: req.CardDetails.Number,
			Expiry: req.CardDetails.Expiry,
			CVV:    req.CardDetails.CVV,
			Name:   req.CardDetails.Name,
		}
	}

	result, err := h.paymentSvc.Pay(c.Request.Context(), middleware.GetAccessToken(c), in)
	if err != nil {
		var invalid *payment.InvalidInputError
		if errors.As(err, &invalid) {
			httputil.Error(c, http.StatusBadRequest, invalid.Message)
			return
		}
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.PaymentFromResult(result))
}

// Status godoc
//
//	@Summary		Get payment status
//	@Description	Fetch the current state of an order
//	@Tags			payments
//	@Produce		json
//	@Param			order_id	query		string	true	"Order ID"
//	@Success		200			{object}	response.OrderResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Failure		401			{object}	httputil.ErrorResponse
//	@Router			/payments/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		httputil.Error(c, http.StatusBadRequest, "order_id is required")
		return
	}

	order, err := h.paymentSvc.OrderStatus(c.Request.Context(), middleware.GetAccessToken(c), orderID)
	if err != nil {
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.OrderFromEntity(order))
}
