package handler

import (
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

type departmentForm struct {
	Name     string `form:"name" binding:"required"`
	Type     string `form:"type" binding:"required"`
	ParentID string `form:"parent_id"`
}

func (f *departmentForm) toModel() (*models.Department, error) {
	parentID, err := parseOptionalID(f.ParentID)
	if err != nil {
		return nil, err
	}
	return &models.Department{
		Name:     f.Name,
		Type:     f.Type,
		ParentID: parentID,
	}, nil
}

// ListDepartments renders the department management page
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/")
		return
	}

	utils.RenderPage(c, "departments.html", gin.H{"departments": departments})
}

// AddDepartmentForm renders the creation form
func (h *DepartmentHandler) AddDepartmentForm(c *gin.Context) {
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/departments")
		return
	}

	utils.RenderPage(c, "add_department.html", gin.H{"departments": departments})
}

// AddDepartment creates a department from form input
func (h *DepartmentHandler) AddDepartment(c *gin.Context) {
	var form departmentForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/department/add", "Department name and type are required")
		return
	}

	department, err := form.toModel()
	if err != nil {
		utils.RedirectWithError(c, "/department/add", "Invalid parent selection")
		return
	}

	if err := h.departmentService.CreateDepartment(department); err != nil {
		redirectError(c, err, "Department", "/department/add")
		return
	}

	utils.RedirectWithSuccess(c, "/departments", "Department added successfully")
}

// EditDepartmentForm renders the edit form
func (h *DepartmentHandler) EditDepartmentForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/departments", "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetDepartmentByID(id)
	if err != nil {
		redirectError(c, err, "Department", "/departments")
		return
	}
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/departments")
		return
	}

	utils.RenderPage(c, "edit_department.html", gin.H{
		"department":  department,
		"departments": departments,
	})
}

// EditDepartment updates a department from form input
func (h *DepartmentHandler) EditDepartment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/departments", "Invalid department ID")
		return
	}

	var form departmentForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/departments", "Department name and type are required")
		return
	}

	department, err := form.toModel()
	if err != nil {
		utils.RedirectWithError(c, "/departments", "Invalid parent selection")
		return
	}
	department.ID = id

	if err := h.departmentService.UpdateDepartment(department); err != nil {
		redirectError(c, err, "Department", "/departments")
		return
	}

	utils.RedirectWithSuccess(c, "/departments", "Department updated successfully")
}

// DeleteDepartment removes a department
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/departments", "Invalid department ID")
		return
	}

	if err := h.departmentService.DeleteDepartment(id); err != nil {
		redirectError(c, err, "Department", "/departments")
		return
	}

	utils.RedirectWithSuccess(c, "/departments", "Department deleted successfully")
}
