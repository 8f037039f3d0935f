package prizeimporter

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/kingdom"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
	"github.com/louisbranch/andaria/internal/services/game/storage"
)

// catalogVersion is the only catalog file version this importer reads.
const catalogVersion = 1

// catalogEntry is a decoded prize ready for storage.
type catalogEntry struct {
	ID     string
	Source string
	File   string
	Prize  prize.Prize
}

func catalogError(file, format string, args ...any) error {
	return apperrors.New(apperrors.CodePrizeCatalogInvalid, file+": "+fmt.Sprintf(format, args...))
}

func wrapCatalogError(file, what string, cause error) error {
	return apperrors.Wrap(apperrors.CodePrizeCatalogInvalid, file+": "+what, cause)
}

// buildEntries validates payloads and converts them, rejecting ids repeated
// anywhere in the import.
func buildEntries(files []string, payloads []catalogPayload) ([]catalogEntry, error) {
	seen := make(map[string]string)
	var entries []catalogEntry
	for i, payload := range payloads {
		file := files[i]
		if payload.Version != catalogVersion {
			return nil, catalogError(file, "unsupported catalog version %d", payload.Version)
		}
		source := strings.TrimSpace(payload.Source)
		if source == "" {
			return nil, catalogError(file, "source is required")
		}
		for _, item := range payload.Items {
			id := strings.TrimSpace(item.ID)
			if id == "" {
				return nil, catalogError(file, "prize id is required")
			}
			if first, dup := seen[id]; dup {
				return nil, catalogError(file, "prize %s already defined in %s", id, first)
			}
			seen[id] = file

			p, err := toPrize(item)
			if err != nil {
				return nil, wrapCatalogError(file, "prize "+id, err)
			}
			entries = append(entries, catalogEntry{ID: id, Source: source, File: file, Prize: p})
		}
	}
	return entries, nil
}

func toPrize(item prizeRecord) (prize.Prize, error) {
	effects := make([]effect.Effect, 0, len(item.Effects))
	for i, record := range item.Effects {
		typ, err := effect.ParseType(strings.TrimSpace(record.Type))
		if err != nil {
			return prize.Prize{}, fmt.Errorf("effect %d: %w", i, err)
		}
		effects = append(effects, effect.New(typ, record.Value, record.Duration.Duration))
	}

	items := make([]prize.ItemID, 0, len(item.Items))
	for _, id := range item.Items {
		items = append(items, prize.ItemID(id))
	}

	reputations := make(map[kingdom.Kingdom]int8, len(item.Reputations))
	for label, delta := range item.Reputations {
		k, err := kingdom.Parse(label)
		if err != nil {
			return prize.Prize{}, fmt.Errorf("reputation: %w", err)
		}
		if _, dup := reputations[k]; dup {
			return prize.Prize{}, fmt.Errorf("reputation: kingdom %s listed twice", k)
		}
		reputations[k] = delta
	}

	p := prize.New(effects, item.Experience, items, item.Gold, reputations)
	if err := p.Validate(); err != nil {
		return prize.Prize{}, err
	}
	return p, nil
}

func upsertPrizes(ctx context.Context, store storage.PrizeStore, entries []catalogEntry, now time.Time) error {
	if store == nil {
		return fmt.Errorf("prize store is required")
	}
	for _, entry := range entries {
		record := storage.PrizeRecord{
			ID:        entry.ID,
			Source:    entry.Source,
			Prize:     entry.Prize,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutPrize(ctx, record); err != nil {
			return fmt.Errorf("put prize %s: %w", entry.ID, err)
		}
	}
	return nil
}
