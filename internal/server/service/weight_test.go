package service

import (
	"testing"

	"voting-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveWeight(t *testing.T) {
	settings := &models.WeightSettings{DefaultAdminWeight: 5, DefaultUserWeight: 1}
	override := 7
	zeroOverride := 0

	tests := []struct {
		name     string
		role     string
		override *int
		settings *models.WeightSettings
		want     int
	}{
		{"regular user counts as one", models.RoleUser, nil, settings, 1},
		{"regular user ignores event override", models.RoleUser, &override, settings, 1},
		{"admin uses global setting", models.RoleAdmin, nil, settings, 5},
		{"admin prefers event override", models.RoleAdmin, &override, settings, 7},
		{"zero override falls back to global", models.RoleAdmin, &zeroOverride, settings, 5},
		{"admin without settings row uses hard default", models.RoleAdmin, nil, nil, 5},
		{"admin with custom global setting", models.RoleAdmin, nil, &models.WeightSettings{DefaultAdminWeight: 3}, 3},
		{"unknown role counts as one", "moderator", &override, settings, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWeight(tt.role, tt.override, tt.settings))
		})
	}
}
