package request

import "github.com/bookline/gateway/internal/domain/entity"

type PaymentRequest struct {
	OrderID       entity.FlexID       `json:"order_id"`
	PaymentMethod string              `json:"payment_method"`
	UPIID         string              `json:"upi_id"`
	CardDetails   *CardDetailsRequest `json:"card_details"`
}

type CardDetailsRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}
