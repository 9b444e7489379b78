package service

import (
	"fmt"
	"strings"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
)

type BuildingService struct {
	buildingRepo *repository.BuildingRepository
}

func NewBuildingService(buildingRepo *repository.BuildingRepository) *BuildingService {
	return &BuildingService{buildingRepo: buildingRepo}
}

// GetAllBuildings retrieves all buildings ordered by name
func (s *BuildingService) GetAllBuildings() ([]models.Building, error) {
	return s.buildingRepo.GetAllBuildings()
}

// GetBuildingByID retrieves a building by ID
func (s *BuildingService) GetBuildingByID(id uint) (*models.Building, error) {
	return s.buildingRepo.GetBuildingByID(id)
}

// GetFundStats computes the aggregate classroom-fund statistics
func (s *BuildingService) GetFundStats() (*models.FundStats, error) {
	return s.buildingRepo.GetFundStats()
}

// CreateBuilding validates and creates a building
func (s *BuildingService) CreateBuilding(building *models.Building) error {
	if err := validateBuilding(building); err != nil {
		return err
	}
	if err := s.buildingRepo.CreateBuilding(building); err != nil {
		return fmt.Errorf("failed to create building: %w", err)
	}
	return nil
}

// UpdateBuilding validates and updates an existing building
func (s *BuildingService) UpdateBuilding(building *models.Building) error {
	if _, err := s.buildingRepo.GetBuildingByID(building.ID); err != nil {
		return err
	}
	if err := validateBuilding(building); err != nil {
		return err
	}
	if err := s.buildingRepo.UpdateBuilding(building); err != nil {
		return fmt.Errorf("failed to update building: %w", err)
	}
	return nil
}

// DeleteBuilding removes a building and, by policy, all of its rooms.
// Deleting an absent id succeeds.
func (s *BuildingService) DeleteBuilding(id uint) error {
	return s.buildingRepo.DeleteBuilding(id)
}

func validateBuilding(building *models.Building) error {
	if strings.TrimSpace(building.Name) == "" {
		return apperrors.NewValidation("name", "building name is required")
	}
	return nil
}
