package database

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"breakeven/server/internal/models"
)

var (
	// ErrScenarioExists is returned when saving under a name already taken.
	ErrScenarioExists = errors.New("scenario already exists")
	// ErrScenarioNotFound is returned when no scenario carries the name.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// Database stores named scenarios in sqlite. Only input parameters are
// persisted; schedules are recomputed on every load.
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewDatabase opens (or creates) the sqlite file at dbPath.
func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{db: db, logger: logger}, nil
}

// SaveScenario persists a new named scenario. Names are unique.
func (d *Database) SaveScenario(scenario *models.Scenario) error {
	if err := d.db.Create(scenario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrScenarioExists
		}
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	d.logger.WithField("scenario", scenario.Name).Info("Saved scenario")
	return nil
}

// GetScenario returns the scenario stored under name.
func (d *Database) GetScenario(name string) (*models.Scenario, error) {
	var scenario models.Scenario
	err := d.db.Where("name = ?", name).First(&scenario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScenarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}
	return &scenario, nil
}

// ListScenarios returns all scenarios, oldest first.
func (d *Database) ListScenarios() ([]models.Scenario, error) {
	var scenarios []models.Scenario
	if err := d.db.Order("created_at").Find(&scenarios).Error; err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

// DeleteScenario removes the scenario stored under name.
func (d *Database) DeleteScenario(name string) error {
	result := d.db.Where("name = ?", name).Delete(&models.Scenario{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete scenario: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrScenarioNotFound
	}

	d.logger.WithField("scenario", name).Info("Deleted scenario")
	return nil
}

// Ping verifies the underlying connection, used by the health endpoint.
func (d *Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
