package database

import (
	"context"
	"fmt"

	"github.com/sstlounge/contest-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	contestRepo contract.ContestRepo
	guildRepo   contract.GuildRepo
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
	i.contestRepo = newContestRepo(i.db.conn)
	i.guildRepo = newGuildRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		contestRepo: newContestRepo(db),
		guildRepo:   newGuildRepo(db),
	}
}

// Contest returns the contest cache repository
func (i *instance) Contest() contract.ContestRepo {
	return i.contestRepo
}

// Guild returns the guild config repository
func (i *instance) Guild() contract.GuildRepo {
	return i.guildRepo
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
