package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vcaron/dialogue/internal/domain"
)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
		INSERT INTO photos (id, storage_key, original_name, url, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		photo.ID, photo.StorageKey, photo.OriginalName, photo.URL, photo.AuthorID, photo.CreatedAt,
	)
	return err
}

func (r *PhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query := `
		SELECT id, storage_key, original_name, url, author_id, created_at
		FROM photos
		WHERE id = $1`

	var p domain.Photo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StorageKey, &p.OriginalName, &p.URL, &p.AuthorID, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}
