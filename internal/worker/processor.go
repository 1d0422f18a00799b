// Package worker processes background tasks dequeued from Redis.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/infrastructure/queue"
)

// Mailer sends transactional email on behalf of the worker.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, token string) error
}

type Processor struct {
	mailer Mailer
	logger *zap.Logger
}

func NewProcessor(mailer Mailer, logger *zap.Logger) *Processor {
	return &Processor{mailer: mailer, logger: logger}
}

// Handler returns the mux routing task types to their handlers.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskSendConfirmationEmail, p.handleConfirmationEmail)
	return mux
}

func (p *Processor) handleConfirmationEmail(ctx context.Context, t *asynq.Task) error {
	var payload queue.ConfirmationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshaling payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.Info("sending confirmation email", zap.String("email", payload.Email))

	if err := p.mailer.SendConfirmation(ctx, payload.Email, payload.Token); err != nil {
		p.logger.Error("confirmation email delivery failed",
			zap.String("email", payload.Email),
			zap.Error(err))
		return err
	}
	return nil
}
