package repository

import (
	"errors"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"gorm.io/gorm"
)

// maxTreeDepth bounds the recursive subtree expansion. The schema does
// not enforce acyclicity, so a parent-link cycle would otherwise recurse
// forever.
const maxTreeDepth = 50

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAllDepartments retrieves all departments ordered by name
func (r *DepartmentRepository) GetAllDepartments() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(id uint) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// CreateDepartment creates a new department
func (r *DepartmentRepository) CreateDepartment(department *models.Department) error {
	return r.db.Create(department).Error
}

// UpdateDepartment updates an existing department
func (r *DepartmentRepository) UpdateDepartment(department *models.Department) error {
	return r.db.Save(department).Error
}

// DeleteDepartment removes a department, detaching its rooms and
// promoting its children to roots so no dangling references remain.
// Deleting an absent id is a no-op.
func (r *DepartmentRepository) DeleteDepartment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Department{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Department{}, id).Error
	})
}

// GetFacultiesWithRoomsInBuilding finds the faculties that qualify for a
// building's structure report: those owning at least one room in the
// building either directly or through an immediate child department.
// Qualification looks one level down only; subtree expansion is
// unbounded (GetDepartmentTree). Each faculty carries its direct room
// count scoped to the building.
func (r *DepartmentRepository) GetFacultiesWithRoomsInBuilding(buildingID uint) ([]models.DepartmentNode, error) {
	var faculties []models.DepartmentNode
	err := r.db.Raw(`
		SELECT DISTINCT d.id, d.name, d.parent_id, d.type,
		       (SELECT COUNT(*) FROM rooms r2
		        WHERE r2.department_id = d.id AND r2.building_id = ?) AS room_count
		FROM departments d
		JOIN rooms r ON r.department_id = d.id OR r.department_id IN (
			SELECT id FROM departments WHERE parent_id = d.id
		)
		WHERE r.building_id = ? AND d.type = ?
		ORDER BY d.name
	`, buildingID, buildingID, models.DepartmentTypeFaculty).Scan(&faculties).Error
	return faculties, err
}

// GetDepartmentTree expands the full subtree rooted at rootID, each node
// annotated with its level below the root and its direct room count in
// the target building. Nodes with zero rooms in the building are still
// included. Rows are ordered by level then name.
func (r *DepartmentRepository) GetDepartmentTree(rootID, buildingID uint) ([]models.DepartmentNode, error) {
	var nodes []models.DepartmentNode
	err := r.db.Raw(`
		WITH RECURSIVE dept_tree AS (
			SELECT id, name, parent_id, type, 0 AS level
			FROM departments
			WHERE id = ?
			UNION ALL
			SELECT d.id, d.name, d.parent_id, d.type, dt.level + 1
			FROM departments d
			JOIN dept_tree dt ON d.parent_id = dt.id
			WHERE dt.level < ?
		)
		SELECT dt.id, dt.name, dt.parent_id, dt.type, dt.level,
		       (SELECT COUNT(*) FROM rooms r
		        WHERE r.department_id = dt.id AND r.building_id = ?) AS room_count
		FROM dept_tree dt
		ORDER BY dt.level, dt.name
	`, rootID, maxTreeDepth, buildingID).Scan(&nodes).Error
	return nodes, err
}
