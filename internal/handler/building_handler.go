package handler

import (
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BuildingHandler struct {
	buildingService *service.BuildingService
	reportService   *service.ReportService
}

func NewBuildingHandler(
	buildingService *service.BuildingService,
	reportService *service.ReportService,
) *BuildingHandler {
	return &BuildingHandler{
		buildingService: buildingService,
		reportService:   reportService,
	}
}

type buildingForm struct {
	Name string `form:"name" binding:"required"`
}

// ListBuildings renders the building management page
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		redirectError(c, err, "Building", "/")
		return
	}

	utils.RenderPage(c, "buildings.html", gin.H{"buildings": buildings})
}

// ShowStructure renders the per-building structure report: qualifying
// faculties with their full subtrees and scoped room counts
func (h *BuildingHandler) ShowStructure(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/", "Invalid building ID")
		return
	}

	building, sections, err := h.reportService.BuildingStructure(id)
	if err != nil {
		redirectError(c, err, "Building", "/")
		return
	}

	utils.RenderPage(c, "building_structure.html", gin.H{
		"building":         building,
		"facultyStructure": sections,
	})
}

// AddBuildingForm renders the creation form
func (h *BuildingHandler) AddBuildingForm(c *gin.Context) {
	utils.RenderPage(c, "add_building.html", nil)
}

// AddBuilding creates a building from form input
func (h *BuildingHandler) AddBuilding(c *gin.Context) {
	var form buildingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/building/add", "Building name is required")
		return
	}

	building := models.Building{Name: form.Name}
	if err := h.buildingService.CreateBuilding(&building); err != nil {
		redirectError(c, err, "Building", "/building/add")
		return
	}

	utils.RedirectWithSuccess(c, "/buildings", "Building added successfully")
}

// EditBuildingForm renders the edit form
func (h *BuildingHandler) EditBuildingForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/buildings", "Invalid building ID")
		return
	}

	building, err := h.buildingService.GetBuildingByID(id)
	if err != nil {
		redirectError(c, err, "Building", "/buildings")
		return
	}

	utils.RenderPage(c, "edit_building.html", gin.H{"building": building})
}

// EditBuilding updates a building from form input
func (h *BuildingHandler) EditBuilding(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/buildings", "Invalid building ID")
		return
	}

	var form buildingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/buildings", "Building name is required")
		return
	}

	building := models.Building{ID: id, Name: form.Name}
	if err := h.buildingService.UpdateBuilding(&building); err != nil {
		redirectError(c, err, "Building", "/buildings")
		return
	}

	utils.RedirectWithSuccess(c, "/buildings", "Building updated successfully")
}

// DeleteBuilding removes a building and its rooms
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/buildings", "Invalid building ID")
		return
	}

	if err := h.buildingService.DeleteBuilding(id); err != nil {
		redirectError(c, err, "Building", "/buildings")
		return
	}

	utils.RedirectWithSuccess(c, "/buildings", "Building deleted successfully")
}
