package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/domain"
)

// ErrDuplicateConversation is returned by ConversationRepository.Create when
// the unique constraint over the participant pair rejects the insert. It is a
// race signal recovered by the caller, never surfaced to clients.
var ErrDuplicateConversation = errors.New("conversation already exists for this user pair")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// ListOthers returns every user except the given one, ordered by username.
	ListOthers(ctx context.Context, exceptID uuid.UUID) ([]domain.User, error)
}

// ConversationRepository persists conversations keyed by a normalized
// participant pair: callers pass userA/userB already sorted so that
// userA <= userB.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByUsers(ctx context.Context, userAID, userBID uuid.UUID) (*domain.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]domain.Message, error)
	ListPhotos(ctx context.Context, conversationID uuid.UUID) ([]domain.Photo, error)
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
}
