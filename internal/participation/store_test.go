package participation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MutualExclusion(t *testing.T) {
	store := NewStore()

	store.SetStatus("M1", "C1", "U1", StatusParticipating)
	snap := store.SetStatus("M1", "C1", "U1", StatusNotParticipating)

	assert.Empty(t, snap.Participating)
	assert.Equal(t, []string{"U1"}, snap.NotParticipating)

	// Switching back evicts from the other side again.
	snap = store.SetStatus("M1", "C1", "U1", StatusParticipating)
	assert.Equal(t, []string{"U1"}, snap.Participating)
	assert.Empty(t, snap.NotParticipating)
}

func TestStore_SetStatusNoneClearsBothSides(t *testing.T) {
	store := NewStore()

	store.SetStatus("M1", "C1", "U1", StatusParticipating)
	store.SetStatus("M1", "C1", "U2", StatusNotParticipating)

	snap := store.SetStatus("M1", "C1", "U1", StatusNone)
	assert.Empty(t, snap.Participating)
	assert.Equal(t, []string{"U2"}, snap.NotParticipating)

	snap = store.SetStatus("M1", "C1", "U2", StatusNone)
	assert.Empty(t, snap.NotParticipating)
}

func TestStore_EnsureIsIdempotent(t *testing.T) {
	store := NewStore()

	first := store.Ensure("M1")
	assert.Empty(t, first.Participating)
	assert.Empty(t, first.NotParticipating)

	store.SetStatus("M1", "C1", "U1", StatusParticipating)

	// A second ensure must not reset existing data.
	again := store.Ensure("M1")
	assert.Equal(t, []string{"U1"}, again.Participating)

	participating, notParticipating := store.Summary("M1")
	assert.Equal(t, 1, participating)
	assert.Equal(t, 0, notParticipating)
}

func TestStore_TrackPreservesExistingData(t *testing.T) {
	store := NewStore()

	// Reactions can arrive before the dispatcher registers the message.
	store.SetStatus("M1", "C1", "U1", StatusParticipating)

	boss := &entity.Boss{MonsterName: "Antharas"}
	snap := store.Track("M1", "C9", boss)

	assert.Equal(t, []string{"U1"}, snap.Participating)
	assert.Equal(t, "C9", snap.ChannelID)
	assert.Same(t, boss, snap.Boss)
}

func TestStore_ClearStatusIf(t *testing.T) {
	store := NewStore()

	// Accept, then switch to decline, then remove the decline marker:
	// the user ends up in neither set.
	store.SetStatus("M1", "C1", "U1", StatusParticipating)
	store.SetStatus("M1", "C1", "U1", StatusNotParticipating)

	snap, ok := store.ClearStatusIf("M1", "U1", StatusNotParticipating)
	require.True(t, ok)
	assert.Empty(t, snap.Participating)
	assert.Empty(t, snap.NotParticipating)
}

func TestStore_ClearStatusIf_MismatchedStatusKept(t *testing.T) {
	store := NewStore()

	// The user switched from accept to decline; a late removal of the
	// accept marker must not clear the decline status.
	store.SetStatus("M1", "C1", "U1", StatusNotParticipating)

	snap, ok := store.ClearStatusIf("M1", "U1", StatusParticipating)
	require.True(t, ok)
	assert.Equal(t, []string{"U1"}, snap.NotParticipating)
	assert.Equal(t, StatusNotParticipating, store.StatusOf("M1", "U1"))
}

func TestStore_ClearStatusIf_UntrackedMessage(t *testing.T) {
	store := NewStore()

	_, ok := store.ClearStatusIf("NOPE", "U1", StatusParticipating)
	assert.False(t, ok)
	assert.False(t, store.Tracked("NOPE"))
}

func TestStore_SnapshotIsSorted(t *testing.T) {
	store := NewStore()

	store.SetStatus("M1", "C1", "U9", StatusParticipating)
	store.SetStatus("M1", "C1", "U1", StatusParticipating)
	snap := store.SetStatus("M1", "C1", "U5", StatusParticipating)

	assert.Equal(t, []string{"U1", "U5", "U9"}, snap.Participating)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := fmt.Sprintf("U%03d", n)
			store.SetStatus("M1", "C1", userID, StatusParticipating)
			store.SetStatus("M1", "C1", userID, StatusNotParticipating)
			store.SetStatus("M1", "C1", userID, StatusParticipating)
		}(i)
	}
	wg.Wait()

	snap := store.Ensure("M1")
	assert.Len(t, snap.Participating, 50)
	assert.Empty(t, snap.NotParticipating)

	// No user may end up on both sides.
	seen := make(map[string]bool)
	for _, u := range snap.Participating {
		seen[u] = true
	}
	for _, u := range snap.NotParticipating {
		assert.False(t, seen[u], "user %s is on both sides", u)
	}
}
