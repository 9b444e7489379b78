package service

import (
	"errors"
	"fmt"
	"strings"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// GetAllDepartments retrieves all departments ordered by name
func (s *DepartmentService) GetAllDepartments() ([]models.Department, error) {
	return s.departmentRepo.GetAllDepartments()
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(id uint) (*models.Department, error) {
	return s.departmentRepo.GetDepartmentByID(id)
}

// CreateDepartment validates and creates a department
func (s *DepartmentService) CreateDepartment(department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	if err := s.departmentRepo.CreateDepartment(department); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// UpdateDepartment validates and updates an existing department
func (s *DepartmentService) UpdateDepartment(department *models.Department) error {
	if _, err := s.departmentRepo.GetDepartmentByID(department.ID); err != nil {
		return err
	}
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	if err := s.departmentRepo.UpdateDepartment(department); err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

// DeleteDepartment removes a department. Deleting an absent id succeeds.
func (s *DepartmentService) DeleteDepartment(id uint) error {
	return s.departmentRepo.DeleteDepartment(id)
}

func (s *DepartmentService) validateDepartment(department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewValidation("name", "department name is required")
	}
	if !models.IsValidDepartmentType(department.Type) {
		return apperrors.NewValidation("type", "unknown department type")
	}

	if department.ParentID != nil {
		if *department.ParentID == department.ID {
			return apperrors.NewValidation("parent_id", "department cannot be its own parent")
		}
		if _, err := s.departmentRepo.GetDepartmentByID(*department.ParentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidation("parent_id", "parent department does not exist")
			}
			return err
		}
	}

	return nil
}
