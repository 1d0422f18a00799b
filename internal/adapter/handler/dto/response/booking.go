package response

import (
	"time"

	"github.com/bookline/gateway/internal/domain/entity"
)

type SlotResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	OpenTime  time.Time `json:"open_time"`
	CloseTime time.Time `json:"close_time"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type BookingResponse struct {
	Message string       `json:"message"`
	Slot    SlotResponse `json:"slot"`
}

// InvalidInputResponse is the validation failure shape for booking requests;
// fields names the offending inputs.
type InvalidInputResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func SlotFromEntity(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID.String(),
		ServiceID: s.ServiceID.String(),
		OpenTime:  s.OpenTime,
		CloseTime: s.CloseTime,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
