package subscription

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/repository"
	"github.com/bookline/gateway/internal/domain/entity"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidEmail rejects addresses that fail the basic shape check.
var ErrInvalidEmail = fmt.Errorf("invalid email address")

//go:generate mockgen -source=service.go -destination=../../mocks/subscription_mocks.go -package=mocks

// EmailQueue enqueues the confirmation mail for asynchronous delivery.
type EmailQueue interface {
	EnqueueConfirmation(ctx context.Context, email, token string) error
}

type Service struct {
	repo   repository.SubscriberRepository
	queue  EmailQueue
	logger *zap.Logger
}

func NewService(repo repository.SubscriberRepository, queue EmailQueue, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		queue:  queue,
		logger: logger,
	}
}

type SubscribeResult struct {
	Email            string
	AlreadyConfirmed bool
}

// Subscribe upserts the address with a fresh confirmation token and queues
// the confirmation mail. A queue failure is logged, not surfaced: the signup
// row is durable and the mail can be re-requested.
func (s *Service) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	if email == "" || !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	token := uuid.NewString()
	sub, err := s.repo.Upsert(ctx, email, token)
	if err != nil {
		return nil, fmt.Errorf("upserting subscriber: %w", err)
	}

	if sub.Status == entity.SubscriberConfirmed {
		return &SubscribeResult{Email: sub.Email, AlreadyConfirmed: true}, nil
	}

	if err := s.queue.EnqueueConfirmation(ctx, sub.Email, token); err != nil {
		s.logger.Warn("failed to enqueue confirmation email",
			zap.String("email", sub.Email),
			zap.Error(err),
		)
	}

	return &SubscribeResult{Email: sub.Email}, nil
}

// Confirm flips a pending subscriber to confirmed by token. Unknown tokens
// surface as domain.ErrSubscriberNotFound from the repository.
func (s *Service) Confirm(ctx context.Context, token string) (*entity.Subscriber, error) {
	return s.repo.ConfirmByToken(ctx, token)
}
