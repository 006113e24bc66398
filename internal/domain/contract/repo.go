package contract

import (
	"context"
	"time"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Boss() BossRepo
	Dispatch() DispatchRepo
}

// BossRepo defines the contract for the boss catalog repository
type BossRepo interface {
	Create(boss *entity.Boss) error
	GetByMonsterName(monsterName string) (*entity.Boss, error)
	GetByID(id int64) (*entity.Boss, error)
	Update(boss *entity.Boss) error
	List() ([]*entity.Boss, error)
}

// DispatchRepo defines the contract for the dispatch log repository
type DispatchRepo interface {
	Create(record *entity.DispatchRecord) error
	GetByMessageID(messageID string) (*entity.DispatchRecord, error)
	ListRecent(limit int) ([]*entity.DispatchRecord, error)
	CountSince(since time.Time) (int64, error)
}
