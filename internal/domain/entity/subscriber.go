package entity

import "time"

type SubscriberStatus string

const (
	SubscriberPending      SubscriberStatus = "pending"
	SubscriberConfirmed    SubscriberStatus = "confirmed"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
)

// Subscriber is a newsletter signup. The confirmation token is rotated on
// every (re-)subscription and cleared once the address is confirmed.
type Subscriber struct {
	ID                int64
	Email             string
	Status            SubscriberStatus
	ConfirmationToken string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
