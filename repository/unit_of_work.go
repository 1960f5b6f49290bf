package repository

import (
	"context"
	"fmt"

	"fleetyield/database"
	"fleetyield/events"
	"fleetyield/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	transactionalBus *events.TransactionalBus
	ledgerRepo       service.DistributionLedgerRepository
	configRepo       service.InterestConfigRepository
	ownershipRepo    service.OwnershipRepository
	tokenRepo        service.TokenRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:       db,
		eventBus: eventBus,
	}
}

type unitOfWorkFactory struct {
	db       *database.DB
	eventBus *events.Bus
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.ledgerRepo = newDistributionLedgerRepositoryWithTx(tx)
	u.configRepo = newInterestConfigRepositoryWithTx(tx)
	u.ownershipRepo = newOwnershipRepositoryWithTx(tx)
	u.tokenRepo = newTokenAccountRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalBus != nil {
		u.transactionalBus.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// DistributionLedgerRepository returns the ledger repository for this unit of work
func (u *unitOfWork) DistributionLedgerRepository() service.DistributionLedgerRepository {
	if u.ledgerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.ledgerRepo
}

// InterestConfigRepository returns the config repository for this unit of work
func (u *unitOfWork) InterestConfigRepository() service.InterestConfigRepository {
	if u.configRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.configRepo
}

// OwnershipRepository returns the ownership repository for this unit of work
func (u *unitOfWork) OwnershipRepository() service.OwnershipRepository {
	if u.ownershipRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.ownershipRepo
}

// TokenRepository returns the token repository for this unit of work
func (u *unitOfWork) TokenRepository() service.TokenRepository {
	if u.tokenRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tokenRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
