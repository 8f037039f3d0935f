package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/kingdom"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prizes.sqlite")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open prize store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close prize store: %v", err)
		}
	})
	return store
}

// fixedClock pins store timestamps so records compare deterministically.
func fixedClock(store *Store, at time.Time) {
	store.now = func() time.Time { return at }
}

func testPrize(gold uint16) prize.Prize {
	return prize.New(
		[]effect.Effect{
			effect.New(effect.TypeMaxHealth, 5, effect.Permanent),
			effect.New(effect.TypeStun, 0, effect.MustTurns(2)),
		},
		40,
		[]prize.ItemID{3, 9},
		gold,
		map[kingdom.Kingdom]int8{kingdom.Elves: 2, kingdom.Humans: -1},
	)
}
