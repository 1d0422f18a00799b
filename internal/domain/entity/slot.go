package entity

import "time"

// Slot is a reserved window on a service's schedule, as returned by the
// upstream scheduling backend.
type Slot struct {
	ID        FlexID    `json:"id"`
	ServiceID FlexID    `json:"service_id"`
	UserID    FlexID    `json:"user_id,omitempty"`
	OpenTime  time.Time `json:"open_time"`
	CloseTime time.Time `json:"close_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
