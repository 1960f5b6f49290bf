package testutil

import (
	"fleetyield/models"
)

// CreateTestDistributionRecord creates a test distribution record
func CreateTestDistributionRecord(assetID int64, periodIndex int32, beneficiary int64) *models.DistributionRecord {
	return &models.DistributionRecord{
		AssetID:     assetID,
		PeriodIndex: periodIndex,
		Beneficiary: beneficiary,
		Amount:      210_000_000,
	}
}

// CreateTestDistributionRecordWithAmount creates a test distribution record with a specific amount
func CreateTestDistributionRecordWithAmount(assetID int64, periodIndex int32, beneficiary int64, amount int64) *models.DistributionRecord {
	record := CreateTestDistributionRecord(assetID, periodIndex, beneficiary)
	record.Amount = amount
	return record
}

// CreateTestInterestConfig creates a test interest config with a configured token
func CreateTestInterestConfig(tokenID int64) *models.InterestConfig {
	return &models.InterestConfig{
		SettlementToken:      &tokenID,
		WeeklyInterestBudget: 700,
		PeriodsToDistribute:  52,
	}
}
