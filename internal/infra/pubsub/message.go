// Package pubsub publishes domain events to Google Pub/Sub or, in development, straight to the sweeper over HTTP.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"rentql/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PushMessage is the envelope Google Pub/Sub sends to push endpoints.
// The local publisher produces the same shape so the sweeper handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every message for filtering and tracing.
func eventAttributes(event *service.AccountDeletedEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.EventType,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps an event in a push envelope.
func NewPushMessage(event *service.AccountDeletedEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeAccountDeleted extracts the event carried by a push envelope.
func DecodeAccountDeleted(msg *PushMessage) (*service.AccountDeletedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AccountDeletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal account deleted event")
	}

	return &event, nil
}
