package service

import (
	"context"

	"fleetyield/events"
	"fleetyield/models"

	"github.com/stretchr/testify/mock"
)

// MockDistributionLedgerRepository is a mock implementation of DistributionLedgerRepository
type MockDistributionLedgerRepository struct {
	mock.Mock
}

func (m *MockDistributionLedgerRepository) HasPaid(ctx context.Context, assetID int64, periodIndex int32, beneficiary int64) (bool, error) {
	args := m.Called(ctx, assetID, periodIndex, beneficiary)
	return args.Bool(0), args.Error(1)
}

func (m *MockDistributionLedgerRepository) RecordPayment(ctx context.Context, record *models.DistributionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDistributionLedgerRepository) AddToTotal(ctx context.Context, assetID int64, amount int64) error {
	args := m.Called(ctx, assetID, amount)
	return args.Error(0)
}

func (m *MockDistributionLedgerRepository) TotalDistributed(ctx context.Context, assetID int64) (int64, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDistributionLedgerRepository) GetByAsset(ctx context.Context, assetID int64, limit int) ([]*models.DistributionRecord, error) {
	args := m.Called(ctx, assetID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DistributionRecord), args.Error(1)
}

// MockInterestConfigRepository is a mock implementation of InterestConfigRepository
type MockInterestConfigRepository struct {
	mock.Mock
}

func (m *MockInterestConfigRepository) Get(ctx context.Context) (*models.InterestConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterestConfig), args.Error(1)
}

func (m *MockInterestConfigRepository) SetSettlementToken(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockInterestConfigRepository) SetPeriodsToDistribute(ctx context.Context, n int32) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockInterestConfigRepository) SetWeeklyInterestBudget(ctx context.Context, amount int64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockOwnershipRepository is a mock implementation of OwnershipRepository
type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) GetAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockOwnershipRepository) CreateAsset(ctx context.Context, name string, fractionalized bool) (*models.Asset, error) {
	args := m.Called(ctx, name, fractionalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockOwnershipRepository) SetHolding(ctx context.Context, assetID, holderID, shares int64) error {
	args := m.Called(ctx, assetID, holderID, shares)
	return args.Error(0)
}

func (m *MockOwnershipRepository) IsFractionalized(ctx context.Context, assetID int64) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnershipRepository) ShareBalance(ctx context.Context, assetID, holderID int64) (int64, error) {
	args := m.Called(ctx, assetID, holderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOwnershipRepository) MaxShares() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) CreateToken(ctx context.Context, symbol string, decimals int16) (*models.Token, error) {
	args := m.Called(ctx, symbol, decimals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Token), args.Error(1)
}

func (m *MockTokenRepository) Decimals(ctx context.Context, tokenID int64) (int16, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(int16), args.Error(1)
}

func (m *MockTokenRepository) BalanceOf(ctx context.Context, tokenID, accountID int64) (int64, error) {
	args := m.Called(ctx, tokenID, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) Credit(ctx context.Context, tokenID, accountID int64, amount int64) error {
	args := m.Called(ctx, tokenID, accountID, amount)
	return args.Error(0)
}

func (m *MockTokenRepository) Transfer(ctx context.Context, tokenID, from, to int64, amount int64) error {
	args := m.Called(ctx, tokenID, from, to, amount)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	ledgerRepo    DistributionLedgerRepository
	configRepo    InterestConfigRepository
	ownershipRepo OwnershipRepository
	tokenRepo     TokenRepository
	eventBus      EventPublisher
}

// SetRepositories configures the repositories returned by this unit of work
func (m *MockUnitOfWork) SetRepositories(ledger DistributionLedgerRepository, config InterestConfigRepository, ownership OwnershipRepository, token TokenRepository, eventBus EventPublisher) {
	m.ledgerRepo = ledger
	m.configRepo = config
	m.ownershipRepo = ownership
	m.tokenRepo = token
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) DistributionLedgerRepository() DistributionLedgerRepository {
	return m.ledgerRepo
}

func (m *MockUnitOfWork) InterestConfigRepository() InterestConfigRepository {
	return m.configRepo
}

func (m *MockUnitOfWork) OwnershipRepository() OwnershipRepository {
	return m.ownershipRepo
}

func (m *MockUnitOfWork) TokenRepository() TokenRepository {
	return m.tokenRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
