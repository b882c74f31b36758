package database

import (
	"voting-service/internal/ports/models"

	"gorm.io/gorm"
)

// MigrateMySQL runs the schema auto-migration and makes sure the singleton
// weight-settings row exists.
func MigrateMySQL(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventVoter{},
		&models.Candidate{},
		&models.Vote{},
		&models.WeightSettings{},
	); err != nil {
		return err
	}

	var settings models.WeightSettings
	return db.Attrs(models.WeightSettings{
		DefaultAdminWeight: models.DefaultAdminWeight,
		DefaultUserWeight:  models.DefaultUserWeight,
	}).FirstOrCreate(&settings).Error
}
