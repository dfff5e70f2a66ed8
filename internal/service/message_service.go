package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
)

// PhotoIngestor is the slice of PhotoService that message sending needs.
type PhotoIngestor interface {
	Ingest(ctx context.Context, content io.Reader, size int64, contentType, originalName string, authorID uuid.UUID) (*domain.Photo, error)
}

// MessageService appends messages to a conversation and lists its history.
// It does not verify that the sender is a participant; that check belongs to
// the access layer in front of it.
type MessageService struct {
	msgRepo  repository.MessageRepository
	convRepo repository.ConversationRepository
	ingestor PhotoIngestor
}

func NewMessageService(msgRepo repository.MessageRepository, convRepo repository.ConversationRepository, ingestor PhotoIngestor) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		convRepo: convRepo,
		ingestor: ingestor,
	}
}

// Send persists a message with the given optional text and photo. A message
// with neither text nor photo is accepted.
func (s *MessageService) Send(ctx context.Context, conversationID, senderID uuid.UUID, text *string, photo *domain.Photo) (*domain.Message, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	msg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Photo:          photo,
		CreatedAt:      time.Now(),
	}

	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	full, err := s.msgRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return msg, nil
	}
	return full, nil
}

// SendWithUpload ingests the upload (if any) and sends the message. A failed
// ingest degrades the message to text-only instead of aborting the send; the
// already-stored photo, if any, is left orphaned.
func (s *MessageService) SendWithUpload(ctx context.Context, conversationID, senderID uuid.UUID, text *string, upload *Upload) (*domain.Message, error) {
	var photo *domain.Photo
	if upload != nil {
		p, err := s.ingestor.Ingest(ctx, upload.Content, upload.Size, upload.ContentType, upload.Filename, senderID)
		if err != nil {
			log.Printf("WARN photo ingest failed, sending without attachment: %v", err)
		} else {
			photo = p
		}
	}
	return s.Send(ctx, conversationID, senderID, text, photo)
}

// ListMessages returns the full history of a conversation, oldest first.
func (s *MessageService) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.Message, error) {
	if err := s.requireConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

// ListPhotos returns the photos attached to the conversation's messages, in
// the chronological order of the messages that carry them.
func (s *MessageService) ListPhotos(ctx context.Context, conversationID uuid.UUID) ([]domain.Photo, error) {
	if err := s.requireConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	photos, err := s.msgRepo.ListPhotos(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []domain.Photo{}
	}
	return photos, nil
}

func (s *MessageService) requireConversation(ctx context.Context, conversationID uuid.UUID) error {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return ErrConversationNotFound
	}
	return nil
}
