package models

// Building represents a campus building ("corpus") that owns rooms
type Building struct {
	ID   uint   `gorm:"primaryKey" json:"id" form:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name" form:"name" binding:"required"`
}

// TableName specifies the table name for Building model
func (Building) TableName() string {
	return "buildings"
}

// FundStats holds the aggregate statistics shown on the dashboard.
// Computed by summing over all rooms; never persisted.
type FundStats struct {
	TotalBuildings int64   `json:"total_buildings"`
	TotalRooms     int64   `json:"total_rooms"`
	TotalArea      float64 `json:"total_area"`
	TotalVolume    float64 `json:"total_volume"`
}
