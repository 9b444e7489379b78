package models

// Department types. A faculty heads a section of the building structure
// report; every other unit is a subordinate department.
const (
	DepartmentTypeFaculty    = "faculty"
	DepartmentTypeDepartment = "department"
)

// Department represents an organizational unit. Units form a forest via
// the nullable ParentID self-reference; a department without a parent is
// a root.
type Department struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	ParentID *uint  `gorm:"index" json:"parent_id"`
	Type     string `gorm:"size:50;not null;default:'department';index" json:"type"`

	Parent *Department `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}

// ParentIDValue returns the parent reference or zero for a root.
// Used by templates, which cannot compare through a nil pointer.
func (d Department) ParentIDValue() uint {
	if d.ParentID == nil {
		return 0
	}
	return *d.ParentID
}

// IsValidDepartmentType reports whether t is a known department type
func IsValidDepartmentType(t string) bool {
	return t == DepartmentTypeFaculty || t == DepartmentTypeDepartment
}
