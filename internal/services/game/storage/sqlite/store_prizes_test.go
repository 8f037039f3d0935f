package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
	"github.com/louisbranch/andaria/internal/services/game/storage"
)

func TestPutGetPrize(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedClock(store, created)

	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "quest-1", Source: " quest ", Prize: testPrize(100)}); err != nil {
		t.Fatalf("put prize: %v", err)
	}

	got, err := store.GetPrize(ctx, "quest-1")
	if err != nil {
		t.Fatalf("get prize: %v", err)
	}
	if got.Source != "quest" {
		t.Fatalf("Source = %q, want quest", got.Source)
	}
	if !got.Prize.Equal(testPrize(100)) {
		t.Fatalf("Prize = %+v, want %+v", got.Prize, testPrize(100))
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
		t.Fatalf("timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, created)
	}
}

func TestPutPrizeReplaceKeepsCreatedAt(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	fixedClock(store, first)
	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "p", Prize: testPrize(1)}); err != nil {
		t.Fatalf("put prize: %v", err)
	}
	fixedClock(store, second)
	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "p", Source: "battle", Prize: testPrize(2)}); err != nil {
		t.Fatalf("replace prize: %v", err)
	}

	got, err := store.GetPrize(ctx, "p")
	if err != nil {
		t.Fatalf("get prize: %v", err)
	}
	if got.Prize.Gold() != 2 || got.Source != "battle" {
		t.Fatalf("replaced record = %+v", got)
	}
	if !got.CreatedAt.Equal(first) {
		t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, first)
	}
	if !got.UpdatedAt.Equal(second) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, second)
	}
}

func TestPutPrizeRejectsInvalid(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "  "}); err == nil {
		t.Fatal("expected error for blank id")
	}

	var p prize.Prize
	p.AddEffect(effect.Effect{Type: effect.Type(99)})
	err := store.PutPrize(ctx, storage.PrizeRecord{ID: "bad", Prize: p})
	if !errors.Is(err, effect.ErrUnknownType) {
		t.Fatalf("error = %v, want %v", err, effect.ErrUnknownType)
	}
	if !errors.Is(err, prize.ErrInvalid) {
		t.Fatalf("error = %v, want %v", err, prize.ErrInvalid)
	}
}

func TestGetPrizeNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetPrize(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeletePrize(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "p", Prize: testPrize(1)}); err != nil {
		t.Fatalf("put prize: %v", err)
	}
	if err := store.DeletePrize(ctx, "p"); err != nil {
		t.Fatalf("delete prize: %v", err)
	}
	if err := store.DeletePrize(ctx, "p"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.GetPrize(ctx, "p"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get after delete error = %v", err)
	}
}

func TestListPrizesPaging(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if err := store.PutPrize(ctx, storage.PrizeRecord{ID: id, Prize: testPrize(1)}); err != nil {
			t.Fatalf("put prize %s: %v", id, err)
		}
	}

	page, err := store.ListPrizes(ctx, 2, "", "")
	if err != nil {
		t.Fatalf("list prizes: %v", err)
	}
	if len(page.Prizes) != 2 || page.Prizes[0].ID != "a" || page.Prizes[1].ID != "b" {
		t.Fatalf("first page = %+v", page.Prizes)
	}
	if page.NextPageToken != "b" {
		t.Fatalf("NextPageToken = %q, want b", page.NextPageToken)
	}

	second, err := store.ListPrizes(ctx, 2, page.NextPageToken, "")
	if err != nil {
		t.Fatalf("list prizes page 2: %v", err)
	}
	if len(second.Prizes) != 1 || second.Prizes[0].ID != "c" {
		t.Fatalf("second page = %+v", second.Prizes)
	}
	if second.NextPageToken != "" {
		t.Fatalf("expected empty next page token, got %s", second.NextPageToken)
	}

	if _, err := store.ListPrizes(ctx, 0, "", ""); err == nil {
		t.Fatal("expected error for zero page size")
	}
}

func TestListPrizesFilter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	records := []storage.PrizeRecord{
		{ID: "cheap", Source: "quest", Prize: testPrize(10)},
		{ID: "rich", Source: "quest", Prize: testPrize(500)},
		{ID: "loot", Source: "battle", Prize: testPrize(700)},
		{ID: "empty", Source: "battle"},
	}
	for _, record := range records {
		if err := store.PutPrize(ctx, record); err != nil {
			t.Fatalf("put prize %s: %v", record.ID, err)
		}
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{`source = "quest"`, []string{"cheap", "rich"}},
		{`gold > 100`, []string{"loot", "rich"}},
		{`source = "battle" AND gold > 100`, []string{"loot"}},
		{`effect_count = 0`, []string{"empty"}},
		{`experience >= 40 AND NOT source = "quest"`, []string{"loot"}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			page, err := store.ListPrizes(ctx, 10, "", tt.filter)
			if err != nil {
				t.Fatalf("list prizes: %v", err)
			}
			var got []string
			for _, record := range page.Prizes {
				got = append(got, record.ID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ids = %v, want %v", got, tt.want)
				}
			}
		})
	}

	_, err := store.ListPrizes(ctx, 10, "", `owner = "x"`)
	if apperrors.CodeOf(err) != apperrors.CodeFilterInvalid {
		t.Fatalf("error code = %s, want %s", apperrors.CodeOf(err), apperrors.CodeFilterInvalid)
	}
}

func TestStoredPayloadCorruptionSurfaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "p", Prize: testPrize(1)}); err != nil {
		t.Fatalf("put prize: %v", err)
	}

	if _, err := store.sqlDB.ExecContext(ctx, "UPDATE prizes SET payload = x'01' WHERE id = 'p'"); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}
	if _, err := store.GetPrize(ctx, "p"); !errors.Is(err, prize.ErrLengthExceeded) {
		t.Fatalf("error = %v, want %v", err, prize.ErrLengthExceeded)
	}

	if _, err := store.sqlDB.ExecContext(ctx, "UPDATE prizes SET format_version = 2 WHERE id = 'p'"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_, err := store.GetPrize(ctx, "p")
	if apperrors.CodeOf(err) != apperrors.CodeWireUnsupportedVersion {
		t.Fatalf("error code = %s, want %s", apperrors.CodeOf(err), apperrors.CodeWireUnsupportedVersion)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestReopenKeepsPrizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prizes.sqlite")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.PutPrize(ctx, storage.PrizeRecord{ID: "kept", Prize: testPrize(3)}); err != nil {
		t.Fatalf("put prize: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.GetPrize(ctx, "kept")
	if err != nil {
		t.Fatalf("get prize: %v", err)
	}
	if got.Prize.Gold() != 3 {
		t.Fatalf("Gold = %d, want 3", got.Prize.Gold())
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.GetPrize(ctx, "p"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}

func TestNilStoreClose(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
