package request

import "github.com/bookline/gateway/internal/domain/entity"

// BookSlotRequest accepts service_id as either a JSON string or number;
// upstream clients are inconsistent about which they send.
type BookSlotRequest struct {
	ServiceID entity.FlexID `json:"service_id"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Duration  *int          `json:"duration"`
}
