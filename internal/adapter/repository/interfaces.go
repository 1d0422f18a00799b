package repository

import (
	"context"

	"github.com/bookline/gateway/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type SubscriberRepository interface {
	// Upsert inserts the email as pending with the given confirmation token,
	// or rotates the token on an existing row. An unsubscribed address is
	// revived to pending; a confirmed one stays confirmed.
	Upsert(ctx context.Context, email, confirmationToken string) (*entity.Subscriber, error)
	ConfirmByToken(ctx context.Context, token string) (*entity.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
}
