// Package participation tracks who opted in or out of each posted boss
// announcement. The store is the authoritative state; the rendered
// announcement is derived from it.
package participation

import (
	"sort"
	"sync"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// Status is a user's recorded intent for one announcement.
type Status int

const (
	StatusNone Status = iota
	StatusParticipating
	StatusNotParticipating
)

type record struct {
	channelID        string
	boss             *entity.Boss
	participating    map[string]struct{}
	notParticipating map[string]struct{}
}

// Snapshot is an immutable copy of one announcement's state, taken under
// the store lock so it always reflects a single consistent point in the
// mutation order. User id slices are sorted.
type Snapshot struct {
	MessageID        string
	ChannelID        string
	Boss             *entity.Boss
	Participating    []string
	NotParticipating []string
}

// Summary returns the per-side counts.
func (s Snapshot) Summary() (participating, notParticipating int) {
	return len(s.Participating), len(s.NotParticipating)
}

// Store maps message ids to their participation state. All methods are
// safe for concurrent use; mutate-and-snapshot happens under one lock
// acquisition so a render never sees a half-applied update.
type Store struct {
	mu      sync.Mutex
	records map[string]*record
}

func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

// Track registers a freshly posted announcement, binding its channel and
// boss record. Existing participation data is preserved if the message
// was already seen.
func (s *Store) Track(messageID, channelID string, boss *entity.Boss) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensureLocked(messageID)
	rec.channelID = channelID
	rec.boss = boss
	return s.snapshotLocked(messageID, rec)
}

// Ensure is the idempotent get-or-create: a missing entry is created
// empty, an existing one is returned untouched.
func (s *Store) Ensure(messageID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(messageID, s.ensureLocked(messageID))
}

// SetStatus moves the user into the set for status, evicting them from
// the other set so membership stays mutually exclusive. StatusNone
// removes the user from both sets. The entry is created if absent, with
// channelID recorded for later edits. Returns the post-mutation snapshot.
func (s *Store) SetStatus(messageID, channelID, userID string, status Status) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensureLocked(messageID)
	if rec.channelID == "" {
		rec.channelID = channelID
	}

	switch status {
	case StatusParticipating:
		delete(rec.notParticipating, userID)
		rec.participating[userID] = struct{}{}
	case StatusNotParticipating:
		delete(rec.participating, userID)
		rec.notParticipating[userID] = struct{}{}
	case StatusNone:
		delete(rec.participating, userID)
		delete(rec.notParticipating, userID)
	}

	return s.snapshotLocked(messageID, rec)
}

// ClearStatusIf removes the user's status only when the recorded status
// equals expected, so removing one marker cannot clear a status set via
// the other marker. The second return is false when the message is not
// tracked at all.
func (s *Store) ClearStatusIf(messageID, userID string, expected Status) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[messageID]
	if !ok {
		return Snapshot{}, false
	}

	if s.statusLocked(rec, userID) == expected {
		delete(rec.participating, userID)
		delete(rec.notParticipating, userID)
	}

	return s.snapshotLocked(messageID, rec), true
}

// StatusOf reports the user's current status for a message.
func (s *Store) StatusOf(messageID, userID string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[messageID]
	if !ok {
		return StatusNone
	}
	return s.statusLocked(rec, userID)
}

// Summary returns the per-side counts for a message. An untracked
// message reports zero on both sides.
func (s *Store) Summary(messageID string) (participating, notParticipating int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[messageID]
	if !ok {
		return 0, 0
	}
	return len(rec.participating), len(rec.notParticipating)
}

// Tracked reports whether the store has an entry for the message.
func (s *Store) Tracked(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[messageID]
	return ok
}

func (s *Store) ensureLocked(messageID string) *record {
	rec, ok := s.records[messageID]
	if !ok {
		rec = &record{
			participating:    make(map[string]struct{}),
			notParticipating: make(map[string]struct{}),
		}
		s.records[messageID] = rec
	}
	return rec
}

func (s *Store) statusLocked(rec *record, userID string) Status {
	if _, ok := rec.participating[userID]; ok {
		return StatusParticipating
	}
	if _, ok := rec.notParticipating[userID]; ok {
		return StatusNotParticipating
	}
	return StatusNone
}

func (s *Store) snapshotLocked(messageID string, rec *record) Snapshot {
	return Snapshot{
		MessageID:        messageID,
		ChannelID:        rec.channelID,
		Boss:             rec.boss,
		Participating:    sortedKeys(rec.participating),
		NotParticipating: sortedKeys(rec.notParticipating),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
