package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to tell a missing prize apart from a corrupted one.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// PrizeRecord is a stored prize with catalog metadata.
type PrizeRecord struct {
	ID        string
	Source    string
	Prize     prize.Prize
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrizeRecordPage is one page of prizes ordered by ID.
type PrizeRecordPage struct {
	Prizes        []PrizeRecord
	NextPageToken string
}

// PrizeStore persists prizes keyed by catalog ID.
type PrizeStore interface {
	// PutPrize inserts or replaces a prize. CreatedAt survives replacement.
	PutPrize(ctx context.Context, record PrizeRecord) error
	// GetPrize returns ErrNotFound when id is unknown.
	GetPrize(ctx context.Context, id string) (PrizeRecord, error)
	// ListPrizes returns prizes after pageToken matching an AIP-160 filter.
	ListPrizes(ctx context.Context, pageSize int, pageToken string, filter string) (PrizeRecordPage, error)
	// DeletePrize returns ErrNotFound when id is unknown.
	DeletePrize(ctx context.Context, id string) error
}
