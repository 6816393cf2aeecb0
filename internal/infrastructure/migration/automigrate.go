package migration

import (
	"gorm.io/gorm"

	"tavolo/internal/infrastructure/persistence/models"
	"tavolo/internal/shared/logger"
)

// AutoMigrateStrategy implements migration using GORM AutoMigrate
type AutoMigrateStrategy struct {
	logger logger.Interface
}

// NewAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log}
}

// Migrate executes GORM AutoMigrate for all persistence models
func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.RestaurantModel{},
		&models.ReservationModel{},
		&models.SubscriptionModel{},
	)
}

// GetName returns the strategy name
func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
