package database

import (
	"fmt"

	"breakeven/server/internal/models"
)

// RunMigrations creates or upgrades the scenario table.
func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.Scenario{}); err != nil {
		return fmt.Errorf("failed to migrate scenarios: %w", err)
	}
	return nil
}
