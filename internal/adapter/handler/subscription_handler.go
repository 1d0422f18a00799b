package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/handler/dto/request"
	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/pkg/httputil"
	"github.com/bookline/gateway/internal/usecase/subscription"
)

type SubscriptionHandler struct {
	subscriptionSvc SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

// Subscribe godoc
//
//	@Summary		Subscribe to the mailing list
//	@Description	Register an email address and send a confirmation mail
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SubscribeRequest	true	"Email address"
//	@Success		200		{object}	response.SubscribeResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req request.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.subscriptionSvc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, subscription.ErrInvalidEmail) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_EMAIL", "invalid email address")
			return
		}
		httputil.InternalError(c)
		return
	}

	message := "Subscription received. Please check your email to confirm."
	if result.AlreadyConfirmed {
		message = "You are already subscribed."
	}

	httputil.OK(c, response.SubscribeResponse{
		Message: message,
		Email:   result.Email,
	})
}

// Confirm godoc
//
//	@Summary		Confirm a subscription
//	@Description	Confirm a pending subscription by token
//	@Tags			subscriptions
//	@Produce		json
//	@Param			token	query		string	true	"Confirmation token"
//	@Success		200		{object}	response.ConfirmSubscriptionResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Unknown token"
//	@Router			/subscriptions/confirm [get]
func (h *SubscriptionHandler) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httputil.Error(c, http.StatusBadRequest, "token is required")
		return
	}

	sub, err := h.subscriptionSvc.Confirm(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriberNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "invalid or expired confirmation token")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ConfirmSubscriptionResponse{
		Message: "Subscription confirmed. Welcome aboard!",
		Email:   sub.Email,
	})
}
