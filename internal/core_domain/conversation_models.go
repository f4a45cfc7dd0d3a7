package core_domain

import "encoding/json"

// MessageDirection tells whether a message came from the contact or was sent to them.
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// Contact is the person on the other end of a conversation.
type Contact struct {
	ID        string  `json:"id" validate:"required"`
	// PhoneE164 is already normalized, e.g. "+15551234567".
	PhoneE164 string  `json:"phone_e164" validate:"required"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// MessageSummary holds the fields extracted from a message by the AI qualifier.
// Every field is optional.
type MessageSummary struct {
	Address   *string `json:"address,omitempty"`
	Timeline  *string `json:"timeline,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Price     *string `json:"price,omitempty"`
}

// Message is a single SMS within a conversation.
type Message struct {
	ID                string           `json:"id" validate:"required"`
	ConversationID    string           `json:"conversation_id" validate:"required"`
	Direction         MessageDirection `json:"direction" validate:"required,oneof=inbound outbound"`
	Body              string           `json:"body"`
	AISummary         *MessageSummary  `json:"ai_summary,omitempty"`
	// ProviderMessageID is the ID assigned by the SMS provider.
	ProviderMessageID *string          `json:"provider_message_id,omitempty"`
	// CreatedAt is an ISO-8601 timestamp.
	CreatedAt         string           `json:"created_at" validate:"required"`
}

// Conversation is a thread with one contact. Messages are ordered oldest first by
// convention; nothing here enforces it.
type Conversation struct {
	ID            string    `json:"id" validate:"required"`
	ContactID     string    `json:"contact_id" validate:"required"`
	Status        string    `json:"status"`
	LastMessageAt string    `json:"last_message_at"`
	CreatedAt     string    `json:"created_at" validate:"required"`
	Contact       Contact   `json:"contact"`
	Messages      []Message `json:"messages" validate:"dive"`
}

// MarshalJSON encodes a nil Messages slice as [] so clients always get an array.
func (c Conversation) MarshalJSON() ([]byte, error) {
	type conversation Conversation
	out := conversation(c)
	if out.Messages == nil {
		out.Messages = []Message{}
	}
	return json.Marshal(out)
}
