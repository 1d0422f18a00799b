package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/adapter/handler/dto/request"
	"github.com/bookline/gateway/internal/adapter/handler/dto/response"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
	"github.com/bookline/gateway/internal/pkg/httputil"
	"github.com/bookline/gateway/internal/usecase/booking"
)

type BookingHandler struct {
	bookingSvc BookingService
}

func NewBookingHandler(bookingSvc BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Book godoc
//
//	@Summary		Book a slot
//	@Description	Reserve a time slot for a service
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.BookSlotRequest	true	"Booking data"
//	@Success		200		{object}	response.BookingResponse
//	@Failure		400		{object}	response.InvalidInputResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Failure		504		{object}	httputil.ErrorResponse	"Upstream timed out"
//	@Router			/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req request.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.InvalidInputResponse{
			Error:  "Invalid input",
			Fields: []string{"body"},
		})
		return
	}

	in := booking.BookInput{
		ServiceID: req.ServiceID.String(),
		Date:      req.Date,
		Time:      req.Time,
	}
	if req.Duration != nil {
		in.DurationMin = *req.Duration
		in.HasDuration = true
	}

	result, err := h.bookingSvc.Book(c.Request.Context(), middleware.GetAccessToken(c), in)
	if err != nil {
		var validation *booking.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, response.InvalidInputResponse{
				Error:  "Invalid input",
				Fields: validation.Fields,
			})
			return
		}
		relayUpstreamError(c, err)
		return
	}

	httputil.OK(c, response.BookingResponse{
		Message: result.Message,
		Slot:    response.SlotFromEntity(result.Slot),
	})
}
