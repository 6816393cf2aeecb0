package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager for the given environment.
// Development uses GORM AutoMigrate; everything else runs the versioned
// goose migrations.
func NewManager(environment string, log logger.Interface) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(log)
	}

	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// NewManagerWithStrategy creates a migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}
