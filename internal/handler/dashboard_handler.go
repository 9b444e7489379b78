package handler

import (
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	buildingService *service.BuildingService
}

func NewDashboardHandler(buildingService *service.BuildingService) *DashboardHandler {
	return &DashboardHandler{buildingService: buildingService}
}

// Index renders the landing page: aggregate fund statistics plus the
// building list. On a query failure the page still renders, with a
// notice and empty data.
func (h *DashboardHandler) Index(c *gin.Context) {
	stats, err := h.buildingService.GetFundStats()
	if err != nil {
		utils.FlashError(c, "Failed to load fund statistics")
		utils.RenderPage(c, "index.html", nil)
		return
	}

	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		utils.FlashError(c, "Failed to load buildings")
		utils.RenderPage(c, "index.html", nil)
		return
	}

	utils.RenderPage(c, "index.html", gin.H{
		"stats":     stats,
		"buildings": buildings,
	})
}
