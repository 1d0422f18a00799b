package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/domain/entity"
)

type SubscriberRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepo(pool *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{pool: pool}
}

func (r *SubscriberRepo) Upsert(ctx context.Context, email, confirmationToken string) (*entity.Subscriber, error) {
	query := `
		INSERT INTO subscribers (email, status, confirmation_token)
		VALUES ($1, 'pending', $2)
		ON CONFLICT (email) DO UPDATE SET
			confirmation_token = EXCLUDED.confirmation_token,
			status = CASE
				WHEN subscribers.status = 'unsubscribed' THEN 'pending'
				ELSE subscribers.status
			END,
			updated_at = NOW()
		RETURNING id, email, status, confirmation_token, created_at, updated_at
	`
	var sub entity.Subscriber
	err := r.pool.QueryRow(ctx, query, email, confirmationToken).Scan(
		&sub.ID, &sub.Email, &sub.Status, &sub.ConfirmationToken, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting subscriber: %w", err)
	}
	return &sub, nil
}

func (r *SubscriberRepo) ConfirmByToken(ctx context.Context, token string) (*entity.Subscriber, error) {
	query := `
		UPDATE subscribers
		SET status = 'confirmed', confirmation_token = '', updated_at = NOW()
		WHERE confirmation_token = $1 AND confirmation_token <> ''
		RETURNING id, email, status, confirmation_token, created_at, updated_at
	`
	var sub entity.Subscriber
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&sub.ID, &sub.Email, &sub.Status, &sub.ConfirmationToken, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("confirming subscriber: %w", err)
	}
	return &sub, nil
}

func (r *SubscriberRepo) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	query := `
		SELECT id, email, status, confirmation_token, created_at, updated_at
		FROM subscribers
		WHERE email = $1
	`
	var sub entity.Subscriber
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.ID, &sub.Email, &sub.Status, &sub.ConfirmationToken, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("querying subscriber: %w", err)
	}
	return &sub, nil
}
