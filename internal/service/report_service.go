package service

import (
	"fmt"

	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
)

type ReportService struct {
	buildingRepo   *repository.BuildingRepository
	departmentRepo *repository.DepartmentRepository
}

func NewReportService(
	buildingRepo *repository.BuildingRepository,
	departmentRepo *repository.DepartmentRepository,
) *ReportService {
	return &ReportService{
		buildingRepo:   buildingRepo,
		departmentRepo: departmentRepo,
	}
}

// BuildingStructure builds the structure report for one building: the
// qualifying faculties, each paired with its full descendant tree and
// per-node room counts scoped to the building. A building with no
// qualifying faculty yields an empty section list. Any query failure
// aborts the whole report; partial results are never returned.
func (s *ReportService) BuildingStructure(buildingID uint) (*models.Building, []models.FacultySection, error) {
	building, err := s.buildingRepo.GetBuildingByID(buildingID)
	if err != nil {
		return nil, nil, err
	}

	faculties, err := s.departmentRepo.GetFacultiesWithRoomsInBuilding(buildingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve faculties: %w", err)
	}

	sections := make([]models.FacultySection, 0, len(faculties))
	for _, faculty := range faculties {
		structure, err := s.departmentRepo.GetDepartmentTree(faculty.ID, buildingID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to expand faculty %d: %w", faculty.ID, err)
		}
		sections = append(sections, models.FacultySection{
			Faculty:   faculty,
			Structure: structure,
		})
	}

	return building, sections, nil
}
