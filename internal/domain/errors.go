package domain

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrObjectNotFound       = errors.New("object not found")
	ErrSubscriberNotFound   = errors.New("subscriber not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrGatewayTimeout       = errors.New("upstream request timed out")
)
