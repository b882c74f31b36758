package service

import (
	"voting-service/internal/ports/models"
)

// ResolveWeight returns the multiplier applied to one vote when computing
// weighted totals. Non-admin votes always count as 1; the stored user
// weight setting is deliberately never consulted. Admin votes use the
// event's override when set, then the global setting, then the hard
// default of 5. The result is always >= 1.
func ResolveWeight(role string, eventOverride *int, settings *models.WeightSettings) int {
	if role != models.RoleAdmin {
		return 1
	}
	if eventOverride != nil && *eventOverride > 0 {
		return *eventOverride
	}
	if settings != nil && settings.DefaultAdminWeight > 0 {
		return settings.DefaultAdminWeight
	}
	return models.DefaultAdminWeight
}
