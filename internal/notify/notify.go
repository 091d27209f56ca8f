// Package notify delivers notifications to people. Delivery channels (SMS,
// push, email) are not wired up; LogNotifier records what would be sent.
package notify

import (
	"context"
	"log/slog"
)

// Message is one notification to deliver.
type Message struct {
	// Kind names what triggered the message, e.g. "notice" or "reminder".
	Kind string
	// To is a phone number or user ID, depending on Kind.
	To   string
	Body string
}

// Notifier delivers messages. Callers log delivery failures and carry on.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier writes every message to a logger instead of delivering it.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a LogNotifier writing to logger, or to the default
// logger when logger is nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "Notification not delivered (no channel configured)",
		"kind", msg.Kind,
		"to", msg.To,
		"body", msg.Body,
	)
	return nil
}

// Nop discards every message.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, Message) error { return nil }
