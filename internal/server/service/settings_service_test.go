package service

import (
	"context"
	"testing"

	"voting-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_FallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	settings, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultAdminWeight, settings.DefaultAdminWeight)
	assert.Equal(t, models.DefaultUserWeight, settings.DefaultUserWeight)
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.UpdateSettings(context.Background(), models.UpdateWeightSettingsRequest{
		DefaultAdminWeight: 10,
		DefaultUserWeight:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, settings.DefaultAdminWeight)

	stored, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stored.DefaultAdminWeight)
	assert.Equal(t, 2, stored.DefaultUserWeight)
}
