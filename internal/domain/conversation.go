package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the single canonical channel between two users. The
// participant pair is stored in normalized order (UserAID <= UserBID) so the
// database can enforce uniqueness over the unordered pair.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	UserAID   uuid.UUID `json:"user_a_id"`
	UserBID   uuid.UUID `json:"user_b_id"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields for frontend
	OtherUserID       uuid.UUID `json:"other_user_id,omitempty"`
	OtherUserUsername string    `json:"other_username,omitempty"`
}

// HasParticipant reports whether the user is one of the two participants.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.UserAID == userID || c.UserBID == userID
}
