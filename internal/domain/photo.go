package domain

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a persisted upload. StorageKey is generated server-side and is the
// only value ever used as a physical path; OriginalName is display metadata.
type Photo struct {
	ID           uuid.UUID `json:"id"`
	StorageKey   string    `json:"storage_key"`
	OriginalName string    `json:"original_name"`
	URL          string    `json:"url"`
	AuthorID     uuid.UUID `json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
}
