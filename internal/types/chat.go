package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Conversation is a message thread between the signed-in user and one peer.
type Conversation struct {
	ID          uuid.UUID `json:"id"`
	PeerName    string    `json:"peer_name"`
	LastMessage string    `json:"last_message,omitempty"`
	UnreadCount int       `json:"unread_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Message is one chat message within a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderName     string    `json:"sender_name"`
	Mine           bool      `json:"mine"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

// SendMessageRequest is the body for posting a new chat message.
type SendMessageRequest struct {
	ConversationID uuid.UUID `json:"conversation_id" validate:"required"`
	Body           string    `json:"body" validate:"required,max=4000"`
}

// Validate validates the SendMessageRequest using the validator.
func (r *SendMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
