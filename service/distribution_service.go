package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fleetyield/events"
	"fleetyield/models"
)

type distributionService struct {
	uowFactory UnitOfWorkFactory
	eventBus   *events.Bus
	adminID    int64
	treasuryID int64

	// mu serializes every externally reachable entry point, so two
	// concurrent calls can never both pass the idempotency check for the
	// same (asset, period, beneficiary) key before either commits. It
	// also guards the pause flag.
	mu     sync.Mutex
	paused bool
}

// NewDistributionService creates the interest distribution engine. Payouts
// are funded from the treasury account; pause control is restricted to the
// administrative account.
func NewDistributionService(uowFactory UnitOfWorkFactory, eventBus *events.Bus, adminID, treasuryID int64) DistributionService {
	return &distributionService{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		adminID:    adminID,
		treasuryID: treasuryID,
	}
}

func (s *distributionService) DistributeInterest(ctx context.Context, assetID int64, periodIndex int32, beneficiaries []int64) ([]*models.PayoutOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return nil, ErrPaused
	}

	// Create unit of work
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	cfg, err := uow.InterestConfigRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get interest config: %w", err)
	}
	if cfg.SettlementToken == nil {
		return nil, ErrTokenNotConfigured
	}
	if periodIndex < 0 || periodIndex >= cfg.PeriodsToDistribute {
		return nil, ErrPeriodOutOfRange
	}
	token := *cfg.SettlementToken

	decimals, err := uow.TokenRepository().Decimals(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get token decimals: %w", err)
	}

	fractionalized, err := uow.OwnershipRepository().IsFractionalized(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check fractionalization of asset %d: %w", assetID, err)
	}
	maxShares := uow.OwnershipRepository().MaxShares()

	outcomes := make([]*models.PayoutOutcome, 0, len(beneficiaries))

	// Sequential fold over the caller-supplied order; AlreadyPaid and
	// InsufficientFunds are outcomes, not errors, and never undo the
	// beneficiaries processed before them.
	for _, beneficiary := range beneficiaries {
		// A non-fractionalized asset pays its sole owner full weight
		weight := maxShares
		if fractionalized {
			weight, err = uow.OwnershipRepository().ShareBalance(ctx, assetID, beneficiary)
			if err != nil {
				return nil, fmt.Errorf("failed to get share balance for holder %d: %w", beneficiary, err)
			}
		}

		amount, err := scaledEntitlement(cfg.WeeklyInterestBudget, weight, maxShares, decimals)
		if err != nil {
			// Overflow aborts the whole call, never a partial batch
			return nil, fmt.Errorf("failed to compute entitlement for holder %d: %w", beneficiary, err)
		}

		paid, err := uow.DistributionLedgerRepository().HasPaid(ctx, assetID, periodIndex, beneficiary)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment state for holder %d: %w", beneficiary, err)
		}
		if paid {
			outcomes = append(outcomes, &models.PayoutOutcome{
				Beneficiary: beneficiary,
				Status:      models.PayoutStatusAlreadyPaid,
			})
			continue
		}

		if amount > 0 {
			balance, err := uow.TokenRepository().BalanceOf(ctx, token, s.treasuryID)
			if err != nil {
				return nil, fmt.Errorf("failed to get treasury balance: %w", err)
			}
			if balance < amount {
				outcomes = append(outcomes, &models.PayoutOutcome{
					Beneficiary: beneficiary,
					Status:      models.PayoutStatusInsufficientFunds,
					Amount:      amount,
				})
				continue
			}

			if err := uow.TokenRepository().Transfer(ctx, token, s.treasuryID, beneficiary, amount); err != nil {
				if errors.Is(err, ErrInsufficientFunds) {
					outcomes = append(outcomes, &models.PayoutOutcome{
						Beneficiary: beneficiary,
						Status:      models.PayoutStatusInsufficientFunds,
						Amount:      amount,
					})
					continue
				}
				return nil, fmt.Errorf("failed to transfer payout to holder %d: %w", beneficiary, err)
			}
		}

		// Ledger commit strictly after the transfer has succeeded.
		// Zero-weight entitlements are recorded too so a repeat call
		// reports AlreadyPaid instead of re-processing.
		record := &models.DistributionRecord{
			AssetID:     assetID,
			PeriodIndex: periodIndex,
			Beneficiary: beneficiary,
			Amount:      amount,
		}
		if err := uow.DistributionLedgerRepository().RecordPayment(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record payment for holder %d: %w", beneficiary, err)
		}
		if err := uow.DistributionLedgerRepository().AddToTotal(ctx, assetID, amount); err != nil {
			return nil, fmt.Errorf("failed to update distributed total: %w", err)
		}

		uow.EventBus().Publish(events.InterestDistributedEvent{
			AssetID:     assetID,
			Beneficiary: beneficiary,
			PeriodIndex: periodIndex,
			Amount:      amount,
		})

		outcomes = append(outcomes, &models.PayoutOutcome{
			Beneficiary: beneficiary,
			Status:      models.PayoutStatusPaid,
			Amount:      amount,
		})
	}

	// Commit the transaction
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return outcomes, nil
}

func (s *distributionService) TotalDistributed(ctx context.Context, assetID int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	total, err := uow.DistributionLedgerRepository().TotalDistributed(ctx, assetID)
	if err != nil {
		return 0, fmt.Errorf("failed to get distributed total for asset %d: %w", assetID, err)
	}

	return total, nil
}

func (s *distributionService) Pause(actorID int64) error {
	if actorID != s.adminID {
		return ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		s.paused = true
		s.eventBus.Emit(context.Background(), events.PauseStateChangedEvent{
			Paused:    true,
			ChangedBy: actorID,
		})
	}
	return nil
}

func (s *distributionService) Unpause(actorID int64) error {
	if actorID != s.adminID {
		return ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		s.paused = false
		s.eventBus.Emit(context.Background(), events.PauseStateChangedEvent{
			Paused:    false,
			ChangedBy: actorID,
		})
	}
	return nil
}

func (s *distributionService) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}
