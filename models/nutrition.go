package models

import "time"

// NutritionLog is a daily macro and hydration summary.
type NutritionLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Date         time.Time `gorm:"index" json:"date"`
	ProteinGrams *int      `json:"protein_grams"`
	CarbsGrams   *int      `json:"carbs_grams"`
	FatGrams     *int      `json:"fat_grams"`
	Calories     *int      `json:"calories"`
	SodiumMg     *int      `json:"sodium_mg"`
	PotassiumMg  *int      `json:"potassium_mg"`
	MagnesiumMg  *int      `json:"magnesium_mg"`
	IsRefeedDay  bool      `gorm:"default:false" json:"is_refeed_day"`
	WaterOz      *int      `json:"water_oz"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
