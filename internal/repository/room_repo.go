package repository

import (
	"errors"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRoomsWithDetails retrieves all rooms with joined building and
// department names and the derived area/volume, ordered by building name
// then room number.
func (r *RoomRepository) GetAllRoomsWithDetails() ([]models.RoomWithDetails, error) {
	var rooms []models.RoomWithDetails
	err := r.db.Raw(`
		SELECT r.*,
		       b.name AS building_name,
		       d.name AS department_name,
		       (r.width * r.length) AS area,
		       (r.width * r.length * r.ceiling_height) AS volume
		FROM rooms r
		JOIN buildings b ON r.building_id = b.id
		LEFT JOIN departments d ON r.department_id = d.id
		ORDER BY b.name, r.room_number
	`).Scan(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetRoomsByBuildingID retrieves all rooms of one building ordered by
// room number
func (r *RoomRepository) GetRoomsByBuildingID(buildingID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("building_id = ?", buildingID).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom updates an existing room
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom removes a room. Deleting an absent id is a no-op.
func (r *RoomRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
