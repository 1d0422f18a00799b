package entity

import "time"

// Order mirrors the upstream order record. Only the fields the gateway
// inspects are modeled explicitly; unknown upstream fields are dropped at the
// boundary rather than carried as open maps.
type Order struct {
	ID               FlexID        `json:"id"`
	PaymentSessionID string        `json:"payment_session_id,omitempty"`
	Status           string        `json:"status,omitempty"`
	Payment          *OrderPayment `json:"payment,omitempty"`
	CreatedAt        *time.Time    `json:"created_at,omitempty"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"`
}

type OrderPayment struct {
	OrderAmount   float64 `json:"order_amount,omitempty"`
	OrderCurrency string  `json:"order_currency,omitempty"`
	Status        string  `json:"status,omitempty"`
}

// SessionID returns the payment session to charge against, falling back to
// the order id when the upstream omitted a dedicated session.
func (o *Order) SessionID() string {
	if o.PaymentSessionID != "" {
		return o.PaymentSessionID
	}
	return o.ID.String()
}
