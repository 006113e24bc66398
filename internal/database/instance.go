package database

import (
	"context"
	"fmt"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	bossRepo     contract.BossRepo
	dispatchRepo contract.DispatchRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.bossRepo = newBossRepo(i.db.conn)
	i.dispatchRepo = newDispatchRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		bossRepo:     newBossRepo(db),
		dispatchRepo: newDispatchRepo(db),
	}
}

// Boss returns the boss catalog repository
func (i *instance) Boss() contract.BossRepo {
	return i.bossRepo
}

// Dispatch returns the dispatch log repository
func (i *instance) Dispatch() contract.DispatchRepo {
	return i.dispatchRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
