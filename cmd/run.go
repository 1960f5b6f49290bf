package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"fleetyield/config"
	"fleetyield/database"
	"fleetyield/events"
	"fleetyield/repository"
	"fleetyield/service"

	logrus "github.com/sirupsen/logrus"
)

// Run initializes and starts the distribution service
func Run(ctx context.Context) error {
	log.Println("Starting fleetyield distribution service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()
	subscribeAuditLog(eventBus)

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	configService := service.NewConfigService(uowFactory, cfg.AdminAccountID)
	distributionService := service.NewDistributionService(uowFactory, eventBus, cfg.AdminAccountID, cfg.TreasuryAccountID)

	// Log the distribution parameters the service came up with
	interestConfig, err := configService.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to read interest config: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"settlementTokenSet":   interestConfig.SettlementToken != nil,
		"weeklyInterestBudget": interestConfig.WeeklyInterestBudget,
		"periodsToDistribute":  interestConfig.PeriodsToDistribute,
		"paused":               distributionService.Paused(),
	}).Info("Distribution engine ready")

	// Wait for context cancellation
	log.Printf("Service is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}

// subscribeAuditLog wires every state-changing event into the structured
// audit log for off-system observability
func subscribeAuditLog(bus *events.Bus) {
	bus.Subscribe(events.EventTypeConfigChanged, func(ctx context.Context, event events.Event) {
		e := event.(events.ConfigChangedEvent)
		logrus.WithFields(logrus.Fields{
			"parameter": e.Parameter,
			"newValue":  e.NewValue,
			"changedBy": e.ChangedBy,
		}).Info("Distribution parameter changed")
	})

	bus.Subscribe(events.EventTypeInterestDistributed, func(ctx context.Context, event events.Event) {
		e := event.(events.InterestDistributedEvent)
		logrus.WithFields(logrus.Fields{
			"assetID":     e.AssetID,
			"beneficiary": e.Beneficiary,
			"periodIndex": e.PeriodIndex,
			"amount":      e.Amount,
		}).Info("Interest distributed")
	})

	bus.Subscribe(events.EventTypePauseStateChanged, func(ctx context.Context, event events.Event) {
		e := event.(events.PauseStateChangedEvent)
		logrus.WithFields(logrus.Fields{
			"paused":    e.Paused,
			"changedBy": e.ChangedBy,
		}).Warn("Distribution engine pause state changed")
	})
}
