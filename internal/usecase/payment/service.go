package payment

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/domain/entity"
)

const (
	MethodUPIID = "upi_id"
	MethodUPIQR = "upi_qr"
	MethodCard  = "card"

	defaultCurrency = "INR"
)

var (
	upiRe        = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z][a-zA-Z0-9]{1,63}$`)
	cardNumberRe = regexp.MustCompile(`^\d{13,19}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

//go:generate mockgen -source=service.go -destination=../../mocks/payment_mocks.go -package=mocks

// OrderAPI and PaymentAPI are the backend client slices payment needs.
type OrderAPI interface {
	GetOrderStatus(ctx context.Context, accessToken, orderID string) (*entity.Order, error)
	GetOrder(ctx context.Context, accessToken, orderID string) (*entity.Order, error)
}

type PaymentAPI interface {
	CollectUPI(ctx context.Context, accessToken string, in backend.UPICollectRequest) (*backend.PaymentResult, error)
	RequestUPIQR(ctx context.Context, accessToken string, in backend.UPIQRRequest) (*backend.PaymentResult, error)
	ProcessCardPayment(ctx context.Context, accessToken string, in backend.CardPaymentRequest) (*backend.PaymentResult, error)
}

// InvalidInputError is a client-caused rejection with a caller-facing message.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

type Service struct {
	orders   OrderAPI
	payments PaymentAPI
	now      func() time.Time
}

func NewService(orders OrderAPI, payments PaymentAPI) *Service {
	return &Service{
		orders:   orders,
		payments: payments,
		now:      time.Now,
	}
}

type PayInput struct {
	OrderID string
	Method  string
	UPIID   string
	Card    *backend.CardDetails
}

// PayResult is shaped per payment method: UPILink for collect flows, QRCode
// for QR flows, Status for synchronous card processing.
type PayResult struct {
	Amount   float64
	Currency string
	UPILink  string
	QRCode   string
	Status   *string
	Method   string
}

// Pay validates the order and method-specific details, then dispatches to the
// matching upstream payment endpoint. Validation always happens before any
// charge attempt; a partially validated request never reaches the processor.
func (s *Service) Pay(ctx context.Context, accessToken string, in PayInput) (*PayResult, error) {
	if in.OrderID == "" || in.Method == "" {
		return nil, invalid("Missing required fields: order_id and payment_method")
	}

	order, err := s.orders.GetOrderStatus(ctx, accessToken, in.OrderID)
	if err != nil {
		return nil, err
	}

	var result *backend.PaymentResult
	switch in.Method {
	case MethodUPIID:
		if in.UPIID == "" {
			return nil, invalid("UPI ID is required")
		}
		if !upiRe.MatchString(in.UPIID) {
			return nil, invalid("Invalid UPI ID")
		}
		result, err = s.payments.CollectUPI(ctx, accessToken, backend.UPICollectRequest{
			PaymentSessionID: order.SessionID(),
			UPIID:            in.UPIID,
		})

	case MethodUPIQR:
		result, err = s.payments.RequestUPIQR(ctx, accessToken, backend.UPIQRRequest{
			PaymentSessionID: order.SessionID(),
		})

	case MethodCard:
		if err := s.validateCard(in.Card); err != nil {
			return nil, err
		}
		result, err = s.payments.ProcessCardPayment(ctx, accessToken, backend.CardPaymentRequest{
			PaymentSessionID: order.SessionID(),
			CardDetails:      in.Card,
		})

	default:
		return nil, &InvalidInputError{Message: domain.ErrInvalidPaymentMethod.Error()}
	}
	if err != nil {
		return nil, err
	}

	out := &PayResult{
		Amount:   result.Amount,
		Currency: result.Currency,
		Method:   in.Method,
	}
	if order.Payment != nil {
		if order.Payment.OrderAmount != 0 {
			out.Amount = order.Payment.OrderAmount
		}
		if order.Payment.OrderCurrency != "" {
			out.Currency = order.Payment.OrderCurrency
		}
	}
	if out.Currency == "" {
		out.Currency = defaultCurrency
	}

	switch in.Method {
	case MethodUPIID:
		out.UPILink = result.PaymentURL
		if out.UPILink == "" {
			out.UPILink = result.UPILink
		}
	case MethodUPIQR:
		out.QRCode = result.QRCode
	case MethodCard:
		out.Status = result.Status
	}

	return out, nil
}

// OrderStatus fetches the current state of an order for polling clients.
func (s *Service) OrderStatus(ctx context.Context, accessToken, orderID string) (*entity.Order, error) {
	return s.orders.GetOrder(ctx, accessToken, orderID)
}

func (s *Service) validateCard(card *backend.CardDetails) error {
	if card == nil {
		return invalid("Card details are required")
	}
	if card.Number == "" || card.Expiry == "" || card.CVV == "" || card.Name == "" {
		return invalid("Missing card details")
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if !cardNumberRe.MatchString(number) {
		return invalid("Invalid card number")
	}

	if !expiryRe.MatchString(card.Expiry) {
		return invalid("Invalid expiry date (MM/YY)")
	}
	var mm, yy int
	fmt.Sscanf(card.Expiry, "%02d/%02d", &mm, &yy)
	// Valid through the last instant of the expiry month.
	expiresAt := time.Date(2000+yy, time.Month(mm)+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)
	if s.now().After(expiresAt) {
		return invalid("Card has expired")
	}

	if !cvvRe.MatchString(card.CVV) {
		return invalid("Invalid CVV")
	}

	return nil
}
