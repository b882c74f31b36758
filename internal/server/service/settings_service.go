package service

import (
	"context"
	"fmt"

	"voting-service/internal/ports/models"
)

// SettingsService exposes the global weight settings to administrators
type SettingsService struct {
	settingsRepo SettingsRepository
}

func NewSettingsService(settingsRepo SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the global weight settings, falling back to the hard
// defaults when the row has never been written.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.WeightSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight settings: %w", err)
	}
	if settings == nil {
		return &models.WeightSettings{
			DefaultAdminWeight: models.DefaultAdminWeight,
			DefaultUserWeight:  models.DefaultUserWeight,
		}, nil
	}
	return settings, nil
}

// UpdateSettings replaces the global weight settings
func (s *SettingsService) UpdateSettings(ctx context.Context, req models.UpdateWeightSettingsRequest) (*models.WeightSettings, error) {
	settings, err := s.settingsRepo.UpdateSettings(ctx, req.DefaultAdminWeight, req.DefaultUserWeight)
	if err != nil {
		return nil, fmt.Errorf("failed to update weight settings: %w", err)
	}
	return settings, nil
}
