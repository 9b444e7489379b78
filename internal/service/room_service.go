package service

import (
	"errors"
	"fmt"
	"strings"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
)

type RoomService struct {
	roomRepo       *repository.RoomRepository
	buildingRepo   *repository.BuildingRepository
	departmentRepo *repository.DepartmentRepository
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	buildingRepo *repository.BuildingRepository,
	departmentRepo *repository.DepartmentRepository,
) *RoomService {
	return &RoomService{
		roomRepo:       roomRepo,
		buildingRepo:   buildingRepo,
		departmentRepo: departmentRepo,
	}
}

// GetAllRoomsWithDetails retrieves all rooms with joined names and
// derived metrics, ordered by building name then room number
func (s *RoomService) GetAllRoomsWithDetails() ([]models.RoomWithDetails, error) {
	return s.roomRepo.GetAllRoomsWithDetails()
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	return s.roomRepo.GetRoomByID(id)
}

// CreateRoom validates and creates a room
func (s *RoomService) CreateRoom(room *models.Room) error {
	if err := s.validateRoom(room); err != nil {
		return err
	}
	if err := s.roomRepo.CreateRoom(room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateRoom validates and updates an existing room
func (s *RoomService) UpdateRoom(room *models.Room) error {
	if _, err := s.roomRepo.GetRoomByID(room.ID); err != nil {
		return err
	}
	if err := s.validateRoom(room); err != nil {
		return err
	}
	if err := s.roomRepo.UpdateRoom(room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

// DeleteRoom removes a room. Deleting an absent id succeeds.
func (s *RoomService) DeleteRoom(id uint) error {
	return s.roomRepo.DeleteRoom(id)
}

// validateRoom enforces the room invariants: positive dimensions, a
// known room type, an existing building and, when set, an existing
// department.
func (s *RoomService) validateRoom(room *models.Room) error {
	if strings.TrimSpace(room.RoomNumber) == "" {
		return apperrors.NewValidation("room_number", "room number is required")
	}
	if room.Width <= 0 {
		return apperrors.NewValidation("width", "width must be positive")
	}
	if room.Length <= 0 {
		return apperrors.NewValidation("length", "length must be positive")
	}
	if room.CeilingHeight <= 0 {
		return apperrors.NewValidation("ceiling_height", "ceiling height must be positive")
	}
	if !models.IsValidRoomType(room.RoomType) {
		return apperrors.NewValidation("room_type", "unknown room type")
	}

	if _, err := s.buildingRepo.GetBuildingByID(room.BuildingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidation("building_id", "building does not exist")
		}
		return err
	}

	if room.DepartmentID != nil {
		if _, err := s.departmentRepo.GetDepartmentByID(*room.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidation("department_id", "department does not exist")
			}
			return err
		}
	}

	return nil
}
