package models

import "time"

// BodyMetric is one body-composition measurement. Decimal values travel as
// strings to avoid float drift, matching how the client submits them.
type BodyMetric struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	Date            time.Time `gorm:"index" json:"date"`
	WeightLbs       string    `gorm:"size:16" json:"weight_lbs"`
	BodyFatPercent  string    `gorm:"size:16" json:"body_fat_percent"`
	LeanMassLbs     string    `gorm:"size:16" json:"lean_mass_lbs"`
	VisceralFat     *int      `json:"visceral_fat"`
	WaistInches     string    `gorm:"size:16" json:"waist_inches"`
	HipsInches      string    `gorm:"size:16" json:"hips_inches"`
	ChestInches     string    `gorm:"size:16" json:"chest_inches"`
	MeasurementType string    `gorm:"size:16" json:"measurement_type"` // scale | dexa | bodpod | tape
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
