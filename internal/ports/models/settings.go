package models

import (
	"gorm.io/gorm"
)

// Hard defaults used when no weight settings row exists.
const (
	DefaultAdminWeight = 5
	DefaultUserWeight  = 1
)

// WeightSettings is the single process-wide weighting configuration record.
// DefaultUserWeight is stored and editable but never consulted when resolving
// a vote's weight: non-admin votes always count as 1.
type WeightSettings struct {
	gorm.Model
	DefaultAdminWeight int `gorm:"column:default_admin_weight;not null;default:5" json:"default_admin_weight"`
	DefaultUserWeight  int `gorm:"column:default_user_weight;not null;default:1" json:"default_user_weight"`
}

// TableName specifies the table name for WeightSettings
func (WeightSettings) TableName() string {
	return "weight_settings"
}

// UpdateWeightSettingsRequest defines the input for updating global weights
type UpdateWeightSettingsRequest struct {
	DefaultAdminWeight int `json:"default_admin_weight" binding:"required,min=1"`
	DefaultUserWeight  int `json:"default_user_weight" binding:"required,min=1"`
}
