package response

import (
	"time"

	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/usecase/payment"
)

// PaymentResponse is shaped per payment method: upi_link for collect flows,
// qr_code for QR flows, status for synchronous card processing.
type PaymentResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	UPILink  string  `json:"upi_link,omitempty"`
	QRCode   string  `json:"qr_code,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type OrderResponse struct {
	ID        string                `json:"id"`
	Status    string                `json:"status,omitempty"`
	Payment   *OrderPaymentResponse `json:"payment,omitempty"`
	CreatedAt *time.Time            `json:"created_at,omitempty"`
	UpdatedAt *time.Time            `json:"updated_at,omitempty"`
}

type OrderPaymentResponse struct {
	OrderAmount   float64 `json:"order_amount,omitempty"`
	OrderCurrency string  `json:"order_currency,omitempty"`
	Status        string  `json:"status,omitempty"`
}

func PaymentFromResult(r *payment.PayResult) PaymentResponse {
	return PaymentResponse{
		Amount:   r.Amount,
		Currency: r.Currency,
		UPILink:  r.UPILink,
		QRCode:   r.QRCode,
		Status:   r.Status,
	}
}

func OrderFromEntity(o *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID.String(),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Payment != nil {
		resp.Payment = &OrderPaymentResponse{
			OrderAmount:   o.Payment.OrderAmount,
			OrderCurrency: o.Payment.OrderCurrency,
			Status:        o.Payment.Status,
		}
	}
	return resp
}
