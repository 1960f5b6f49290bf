package service

import (
	"context"
	"fmt"

	"fleetyield/events"
	"fleetyield/models"
)

type configService struct {
	uowFactory UnitOfWorkFactory
	adminID    int64
}

// NewConfigService creates a new configuration service. All setters are
// restricted to the administrative account.
func NewConfigService(uowFactory UnitOfWorkFactory, adminID int64) ConfigService {
	return &configService{
		uowFactory: uowFactory,
		adminID:    adminID,
	}
}

func (s *configService) SetSettlementToken(ctx context.Context, actorID, tokenID int64) error {
	if actorID != s.adminID {
		return ErrNotAuthorized
	}
	if tokenID <= 0 {
		return ErrInvalidToken
	}

	// Create unit of work
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	cfg, err := uow.InterestConfigRepository().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get interest config: %w", err)
	}

	// Re-setting the same token is rejected so accidental no-op
	// administrative calls surface as errors
	if cfg.SettlementToken != nil && *cfg.SettlementToken == tokenID {
		return ErrTokenAlreadySet
	}

	// The token must exist in the settlement layer
	if _, err := uow.TokenRepository().Decimals(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to resolve settlement token %d: %w", tokenID, err)
	}

	if err := uow.InterestConfigRepository().SetSettlementToken(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to set settlement token: %w", err)
	}

	uow.EventBus().Publish(events.ConfigChangedEvent{
		Parameter: "settlement_token",
		NewValue:  tokenID,
		ChangedBy: actorID,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *configService) SetPeriodsToDistribute(ctx context.Context, actorID int64, n int32) error {
	if actorID != s.adminID {
		return ErrNotAuthorized
	}
	if n < 0 {
		return fmt.Errorf("periods to distribute must be non-negative, got %d", n)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	// Lowering the bound never invalidates already-paid records; it only
	// constrains future distribution calls.
	if err := uow.InterestConfigRepository().SetPeriodsToDistribute(ctx, n); err != nil {
		return fmt.Errorf("failed to set periods to distribute: %w", err)
	}

	uow.EventBus().Publish(events.ConfigChangedEvent{
		Parameter: "periods_to_distribute",
		NewValue:  int64(n),
		ChangedBy: actorID,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *configService) SetWeeklyInterestBudget(ctx context.Context, actorID int64, amount int64) error {
	if actorID != s.adminID {
		return ErrNotAuthorized
	}
	if amount < 0 {
		return fmt.Errorf("weekly interest budget must be non-negative, got %d", amount)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	// Takes effect on the next distribution call, never retroactively
	if err := uow.InterestConfigRepository().SetWeeklyInterestBudget(ctx, amount); err != nil {
		return fmt.Errorf("failed to set weekly interest budget: %w", err)
	}

	uow.EventBus().Publish(events.ConfigChangedEvent{
		Parameter: "weekly_interest_budget",
		NewValue:  amount,
		ChangedBy: actorID,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *configService) GetConfig(ctx context.Context) (*models.InterestConfig, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	cfg, err := uow.InterestConfigRepository().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get interest config: %w", err)
	}

	return cfg, nil
}
