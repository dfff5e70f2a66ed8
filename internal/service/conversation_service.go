package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
)

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrConversationNotFound = errors.New("conversation not found")
)

// ConversationService resolves a pair of users to their single canonical
// conversation, creating it on first contact. A user is allowed to open a
// conversation with themself.
type ConversationService struct {
	convRepo repository.ConversationRepository
	userRepo repository.UserRepository
}

func NewConversationService(convRepo repository.ConversationRepository, userRepo repository.UserRepository) *ConversationService {
	return &ConversationService{
		convRepo: convRepo,
		userRepo: userRepo,
	}
}

// GetOrCreate returns the conversation between the two users, regardless of
// argument order. Under concurrent first contact the losing insert hits the
// pair unique constraint and the winning row is re-read, so at most one
// conversation ever exists per pair.
func (s *ConversationService) GetOrCreate(ctx context.Context, userAID, userBID uuid.UUID) (*domain.Conversation, error) {
	u1, u2 := normalizePair(userAID, userBID)

	conv, err := s.convRepo.GetByUsers(ctx, u1, u2)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		if err := s.attachOtherUser(ctx, conv, userAID); err != nil {
			return nil, err
		}
		return conv, nil
	}

	for _, id := range []uuid.UUID{userAID, userBID} {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrParticipantNotFound
		}
	}

	conv = &domain.Conversation{
		ID:        uuid.New(),
		UserAID:   u1,
		UserBID:   u2,
		CreatedAt: time.Now(),
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		if errors.Is(err, repository.ErrDuplicateConversation) {
			winner, err := s.convRepo.GetByUsers(ctx, u1, u2)
			if err != nil {
				return nil, err
			}
			if winner == nil {
				return nil, ErrConversationNotFound
			}
			conv = winner
		} else {
			return nil, fmt.Errorf("creating conversation: %w", err)
		}
	}

	if err := s.attachOtherUser(ctx, conv, userAID); err != nil {
		return nil, err
	}
	return conv, nil
}

// FindByID returns the conversation with the joined other-user fields filled
// in relative to the viewer, when the viewer is a participant.
func (s *ConversationService) FindByID(ctx context.Context, id, viewerID uuid.UUID) (*domain.Conversation, error) {
	conv, err := s.convRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if err := s.attachOtherUser(ctx, conv, viewerID); err != nil {
		return nil, err
	}
	return conv, nil
}

// ListForUser returns all conversations the user participates in, most
// recently created first.
func (s *ConversationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	convs, err := s.convRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if convs == nil {
		convs = []domain.Conversation{}
	}
	return convs, nil
}

// attachOtherUser fills the joined display fields relative to the viewer.
// No-op when the viewer is not a participant.
func (s *ConversationService) attachOtherUser(ctx context.Context, conv *domain.Conversation, viewerID uuid.UUID) error {
	if !conv.HasParticipant(viewerID) {
		return nil
	}

	otherID := conv.UserAID
	if otherID == viewerID {
		otherID = conv.UserBID
	}
	conv.OtherUserID = otherID

	other, err := s.userRepo.GetByID(ctx, otherID)
	if err != nil {
		return err
	}
	if other != nil {
		conv.OtherUserUsername = other.Username
	}
	return nil
}

// normalizePair sorts the two ids so the pair has a single canonical storage
// order, making (u, v) and (v, u) hit the same row and the same unique index.
func normalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}
