package backend

import (
	"context"
	"net/http"
)

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

type UPICollectRequest struct {
	PaymentSessionID string `json:"payment_session_id"`
	UPIID            string `json:"upi_id"`
}

type UPIQRRequest struct {
	PaymentSessionID string `json:"payment_session_id"`
}

type CardPaymentRequest struct {
	PaymentSessionID string       `json:"payment_session_id"`
	CardDetails      *CardDetails `json:"card_details"`
}

// PaymentResult is the subset of processor fields the gateway shapes its
// responses from. Status is a pointer: its presence is meaningful for card
// payments.
type PaymentResult struct {
	Amount     float64 `json:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	PaymentURL string  `json:"payment_url,omitempty"`
	UPILink    string  `json:"upi_link,omitempty"`
	QRCode     string  `json:"qr_code,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (c *Client) CollectUPI(ctx context.Context, accessToken string, in UPICollectRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.doJSON(ctx, http.MethodPost, "/payments/upi/collect", accessToken, in, &result, c.requestTimeout); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RequestUPIQR(ctx context.Context, accessToken string, in UPIQRRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.doJSON(ctx, http.MethodPost, "/payments/upi/qr", accessToken, in, &result, c.requestTimeout); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ProcessCardPayment(ctx context.Context, accessToken string, in CardPaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.doJSON(ctx, http.MethodPost, "/payments/process", accessToken, in, &result, c.requestTimeout); err != nil {
		return nil, err
	}
	return &result, nil
}
