package repository

import (
	"context"
	"errors"

	"voting-service/internal/ports/models"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns the global weight settings, or nil when the row has
// never been written (callers fall back to the hard defaults).
func (r *SettingsRepository) GetSettings(ctx context.Context) (*models.WeightSettings, error) {
	var settings models.WeightSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings upserts the singleton weight settings row
func (r *SettingsRepository) UpdateSettings(ctx context.Context, adminWeight, userWeight int) (*models.WeightSettings, error) {
	var settings models.WeightSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&settings).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			settings = models.WeightSettings{
				DefaultAdminWeight: adminWeight,
				DefaultUserWeight:  userWeight,
			}
			return tx.Create(&settings).Error
		}
		settings.DefaultAdminWeight = adminWeight
		settings.DefaultUserWeight = userWeight
		return tx.Save(&settings).Error
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
