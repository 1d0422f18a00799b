package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/bookline/gateway/internal/domain/entity"
)

type CreateSlotInput struct {
	ServiceID string    `json:"service_id"`
	OpenTime  time.Time `json:"open_time"`
	CloseTime time.Time `json:"close_time"`
}

type createSlotResponse struct {
	Slot    *entity.Slot `json:"slot"`
	Message string       `json:"message"`
}

// CreateSlot reserves a schedule slot on the backend. Booking uses the
// tighter booking timeout: a customer is waiting on this call.
func (c *Client) CreateSlot(ctx context.Context, accessToken string, in CreateSlotInput) (*entity.Slot, string, error) {
	var resp createSlotResponse
	if err := c.doJSON(ctx, http.MethodPost, "/schedule-slots", accessToken, in, &resp, c.bookingTimeout); err != nil {
		return nil, "", err
	}
	if resp.Message == "" {
		resp.Message = "Slot created successfully"
	}
	return resp.Slot, resp.Message, nil
}
