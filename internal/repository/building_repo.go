package repository

import (
	"errors"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"gorm.io/gorm"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// GetAllBuildings retrieves all buildings ordered by name
func (r *BuildingRepository) GetAllBuildings() ([]models.Building, error) {
	var buildings []models.Building
	err := r.db.Order("name ASC").Find(&buildings).Error
	return buildings, err
}

// GetBuildingByID retrieves a building by ID
func (r *BuildingRepository) GetBuildingByID(id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &building, nil
}

// CreateBuilding creates a new building
func (r *BuildingRepository) CreateBuilding(building *models.Building) error {
	return r.db.Create(building).Error
}

// UpdateBuilding updates an existing building
func (r *BuildingRepository) UpdateBuilding(building *models.Building) error {
	return r.db.Save(building).Error
}

// DeleteBuilding removes a building together with its rooms in a single
// transaction. Deleting an absent id is a no-op.
func (r *BuildingRepository) DeleteBuilding(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("building_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Building{}, id).Error
	})
}

// GetFundStats computes the aggregate classroom-fund statistics. A
// building with no rooms still counts toward total_buildings and
// contributes zero to the sums.
func (r *BuildingRepository) GetFundStats() (*models.FundStats, error) {
	var stats models.FundStats
	err := r.db.Raw(`
		SELECT
			COUNT(DISTINCT b.id) AS total_buildings,
			COUNT(r.id) AS total_rooms,
			COALESCE(SUM(r.width * r.length), 0) AS total_area,
			COALESCE(SUM(r.width * r.length * r.ceiling_height), 0) AS total_volume
		FROM buildings b
		LEFT JOIN rooms r ON b.id = r.building_id
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
