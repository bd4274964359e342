package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/omparkhi/JobWeb/internal/domain"
)

func (h *Handler) publishMail(msg domain.MailMessage) error {
	mailData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}

// notifyMail is the best-effort variant for notifications that ride along
// with an already-committed mutation: a publish failure is logged, never
// surfaced to the caller.
func (h *Handler) notifyMail(msg domain.MailMessage) {
	if err := h.publishMail(msg); err != nil {
		slog.Warn("failed to queue notification mail", "type", msg.Type, "to", msg.To, "error", err)
	}
}
