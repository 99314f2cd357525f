package notification

import (
	"time"

	"fulfillment/internal/entities"
)

type message struct {
	ID          string         `json:"id"`
	Event       string         `json:"event"`
	RecipientID string         `json:"recipient_id"`
	OrderID     *string        `json:"order_id,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toMessage(intent entities.NotificationIntent) message {
	return message{
		ID:          intent.ID,
		Event:       intent.Event.String(),
		RecipientID: intent.RecipientID,
		OrderID:     intent.OrderID,
		Payload:     intent.Payload,
		CreatedAt:   intent.CreatedAt,
	}
}
