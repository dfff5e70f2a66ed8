package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to exactly one conversation. Both Text and Photo are
// optional; a message carrying neither is accepted.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Text           *string   `json:"text,omitempty"`
	Photo          *Photo    `json:"photo,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	// Joined fields
	SenderUsername string `json:"sender_username,omitempty"`
}
