// Package alert is the announcement engine: it dispatches boss
// notifications and keeps each posted announcement in sync with the
// reactions it receives.
package alert

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
	"github.com/hunterwatch/boss-alert-bot/internal/participation"
)

var _ contract.AlertService = (*Service)(nil)

type Service struct {
	store     *participation.Store
	chat      contract.ChatClient
	dm        contract.DataManager
	channelID string
	log       logrus.FieldLogger

	// messageLocks serializes the mutate-then-edit sequence per message
	// so edits reach the channel in mutation order. Events for
	// different messages proceed independently.
	mu           sync.Mutex
	messageLocks map[string]*sync.Mutex

	// now is swapped in tests to pin rendered countdowns
	now func() time.Time
}

func New(store *participation.Store, chat contract.ChatClient, dm contract.DataManager, channelID string, log logrus.FieldLogger) *Service {
	return &Service{
		store:        store,
		chat:         chat,
		dm:           dm,
		channelID:    channelID,
		log:          log,
		messageLocks: make(map[string]*sync.Mutex),
		now:          time.Now,
	}
}

func (s *Service) messageLock(messageID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.messageLocks[messageID]
	if !ok {
		lock = &sync.Mutex{}
		s.messageLocks[messageID] = lock
	}
	return lock
}
