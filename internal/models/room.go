package models

// Room types form a fixed enumeration; anything else is rejected at
// validation time.
const (
	RoomTypeLecture    = "lecture"
	RoomTypeLaboratory = "laboratory"
	RoomTypeOffice     = "office"
	RoomTypeStorage    = "storage"
	RoomTypeOther      = "other"
)

// RoomTypes lists the allowed room types in display order
func RoomTypes() []string {
	return []string{RoomTypeLecture, RoomTypeLaboratory, RoomTypeOffice, RoomTypeStorage, RoomTypeOther}
}

// IsValidRoomType reports whether t is part of the room type enumeration
func IsValidRoomType(t string) bool {
	switch t {
	case RoomTypeLecture, RoomTypeLaboratory, RoomTypeOffice, RoomTypeStorage, RoomTypeOther:
		return true
	}
	return false
}

// Room represents a single tracked space inside a building. The
// department reference is optional; dimensions are stored raw and area
// and volume are always derived.
type Room struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	BuildingID          uint    `gorm:"not null;index" json:"building_id"`
	RoomNumber          string  `gorm:"size:50;not null" json:"room_number"`
	LocationDescription string  `gorm:"type:text" json:"location_description"`
	Width               float64 `gorm:"not null" json:"width"`
	Length              float64 `gorm:"not null" json:"length"`
	CeilingHeight       float64 `gorm:"not null" json:"ceiling_height"`
	Purpose             string  `gorm:"type:text" json:"purpose"`
	RoomType            string  `gorm:"size:50;not null;default:'other'" json:"room_type"`
	DepartmentID        *uint   `gorm:"index" json:"department_id"`

	Building   Building    `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// Area returns the floor area in square meters
func (r Room) Area() float64 {
	return r.Width * r.Length
}

// Volume returns the room volume in cubic meters
func (r Room) Volume() float64 {
	return r.Area() * r.CeilingHeight
}

// DepartmentIDValue returns the department reference or zero when the
// room has no department. Used by templates, which cannot compare
// through a nil pointer.
func (r Room) DepartmentIDValue() uint {
	if r.DepartmentID == nil {
		return 0
	}
	return *r.DepartmentID
}

// RoomWithDetails includes the joined building and department names plus
// the derived metrics, for listing views
type RoomWithDetails struct {
	Room
	BuildingName   string  `json:"building_name"`
	DepartmentName *string `json:"department_name"`
	Area           float64 `json:"area"`
	Volume         float64 `json:"volume"`
}
