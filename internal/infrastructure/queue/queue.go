// Package queue wraps the asynq client used to hand slow work (today:
// confirmation email delivery) to the worker process.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/bookline/gateway/internal/infrastructure/config"
)

const TaskSendConfirmationEmail = "email:send_confirmation"

type ConfirmationEmailPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueConfirmation(ctx context.Context, email, token string) error {
	data, err := json.Marshal(ConfirmationEmailPayload{Email: email, Token: token})
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	task := asynq.NewTask(TaskSendConfirmationEmail, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueueing confirmation email: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
