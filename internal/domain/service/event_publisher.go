package service

import (
	"context"
)

// AccountDeletedEvent announces that an account and its owned resources were removed.
// Consumers re-run the owner cascade idempotently.
type AccountDeletedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`
	UserID    string `json:"user_id"`
	DeletedAt int64  `json:"deleted_at"` // Unix seconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountDeleted publishes an account deletion for async reconciliation
	PublishAccountDeleted(ctx context.Context, event *AccountDeletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
