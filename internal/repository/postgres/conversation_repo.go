package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
)

const uniqueViolation = "23505"

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

func (r *ConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	query := `
		INSERT INTO conversations (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, conv.ID, conv.UserAID, conv.UserBID, conv.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateConversation
	}
	return err
}

func (r *ConversationRepo) GetByUsers(ctx context.Context, userAID, userBID uuid.UUID) (*domain.Conversation, error) {
	query := `
		SELECT id, user_a_id, user_b_id, created_at
		FROM conversations
		WHERE user_a_id = $1 AND user_b_id = $2`
	var conv domain.Conversation
	err := r.pool.QueryRow(ctx, query, userAID, userBID).Scan(
		&conv.ID, &conv.UserAID, &conv.UserBID, &conv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &conv, err
}

func (r *ConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	query := `
		SELECT id, user_a_id, user_b_id, created_at
		FROM conversations
		WHERE id = $1`
	var conv domain.Conversation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&conv.ID, &conv.UserAID, &conv.UserBID, &conv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &conv, err
}

func (r *ConversationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	query := `
		SELECT c.id, c.user_a_id, c.user_b_id, c.created_at,
			CASE WHEN c.user_a_id = $1 THEN c.user_b_id ELSE c.user_a_id END AS other_user_id,
			CASE WHEN c.user_a_id = $1 THEN ub.username ELSE ua.username END AS other_username
		FROM conversations c
		JOIN users ua ON c.user_a_id = ua.id
		JOIN users ub ON c.user_b_id = ub.id
		WHERE c.user_a_id = $1 OR c.user_b_id = $1
		ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var conv domain.Conversation
		if err := rows.Scan(
			&conv.ID, &conv.UserAID, &conv.UserBID, &conv.CreatedAt,
			&conv.OtherUserID, &conv.OtherUserUsername,
		); err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}
	return convs, rows.Err()
}
