package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vcaron/dialogue/internal/domain"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, text, photo_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	var photoID *uuid.UUID
	if msg.Photo != nil {
		photoID = &msg.Photo.ID
	}

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.ConversationID, msg.SenderID, msg.Text, photoID, msg.CreatedAt,
	)
	return err
}

const messageColumns = `
	m.id, m.conversation_id, m.sender_id, m.text, m.created_at, u.username,
	p.id, p.storage_key, p.original_name, p.url, p.author_id, p.created_at`

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		LEFT JOIN photos p ON m.photo_id = p.id
		WHERE m.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	msg, err := scanMessage(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return msg, err
}

// ListByConversation returns the full history of a conversation, oldest first.
func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		LEFT JOIN photos p ON m.photo_id = p.id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at ASC`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

// ListPhotos projects the photos attached to a conversation's messages, in the
// chronological order of the owning messages.
func (r *MessageRepo) ListPhotos(ctx context.Context, conversationID uuid.UUID) ([]domain.Photo, error) {
	query := `
		SELECT p.id, p.storage_key, p.original_name, p.url, p.author_id, p.created_at
		FROM messages m
		JOIN photos p ON m.photo_id = p.id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at ASC`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.StorageKey, &p.OriginalName, &p.URL, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func scanMessage(scan func(dest ...any) error) (*domain.Message, error) {
	var (
		msg          domain.Message
		photoID      *uuid.UUID
		storageKey   *string
		originalName *string
		url          *string
		authorID     *uuid.UUID
		photoCreated *time.Time
	)
	err := scan(
		&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Text, &msg.CreatedAt, &msg.SenderUsername,
		&photoID, &storageKey, &originalName, &url, &authorID, &photoCreated,
	)
	if err != nil {
		return nil, err
	}

	if photoID != nil {
		msg.Photo = &domain.Photo{
			ID:           *photoID,
			StorageKey:   *storageKey,
			OriginalName: *originalName,
			URL:          *url,
			AuthorID:     *authorID,
			CreatedAt:    *photoCreated,
		}
	}
	return &msg, nil
}
